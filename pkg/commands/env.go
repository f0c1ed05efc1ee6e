package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"tableflip.dev/datestamp/pkg/app"
	"tableflip.dev/datestamp/pkg/notice"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
)

// env is what most commands need: the settings, the session and the
// service running the insertion pipeline over them.
type env struct {
	Settings *settings.Store
	Session  *session.Session
	App      *app.Service
}

func loadSettings() (*settings.Store, error) {
	path := g.Config
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return settings.Open(afero.NewOsFs(), path)
}

func loadSession() (*session.Session, error) {
	var cfg session.Config
	if g.Session != "" {
		cfg = session.Dir(g.Session)
	}
	return session.Load(cfg)
}

func loadEnv() (*env, error) {
	store, err := loadSettings()
	if err != nil {
		return nil, err
	}
	sess, err := loadSession()
	if err != nil {
		return nil, err
	}
	return &env{
		Settings: store,
		Session:  sess,
		App: &app.Service{
			Settings: store,
			Host:     sess,
			Notifier: &notice.Console{Out: color.Error, Width: 80},
			Log:      app.NewLogger(g.Verbose, os.Stderr),
		},
	}, nil
}
