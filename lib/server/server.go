package server

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"

	"github.com/crewlens/crewlens/lib/planapi"
)

// Version is stamped at build time.
var Version = "dev"

type Options struct {
	// ActualsWindowDays is the trailing calendar window used when the
	// project overview fetches actuals. Defaults to 90.
	ActualsWindowDays int

	// Now lets tests pin the clock.
	Now func() time.Time
}

type Server struct {
	client *planapi.Client
	log    *logrus.Logger
	opts   Options
}

func New(client *planapi.Client, log *logrus.Logger, opts *Options) *Server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.ActualsWindowDays <= 0 {
		opts.ActualsWindowDays = 90
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Server{
		client: client,
		log:    log,
		opts:   *opts,
	}
}

func (s *Server) opLogger(operation string) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"operation":  operation,
		"request_id": shortid.MustGenerate(),
	})
}

func (s *Server) logDone(log *logrus.Entry, start time.Time, err error) {
	log = log.WithField("duration", time.Since(start).Round(time.Millisecond))
	if err != nil {
		log.WithError(err).Warn("operation failed")
	} else {
		log.Info("operation handled")
	}
}
