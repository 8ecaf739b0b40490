package flag

import (
	"errors"
	"flag"

	"github.com/elC0mpa/gcs-doctor/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	var flags model.Flags

	flag.StringVar(&flags.Project, "project", "", "Google Cloud project ID")
	flag.StringVar(&flags.Project, "p", "", "Google Cloud project ID (shorthand)")
	flag.StringVar(&flags.Credentials, "credentials", "", "Path to service account credentials JSON file")
	flag.StringVar(&flags.Credentials, "c", "", "Path to service account credentials JSON file (shorthand)")
	flag.BoolVar(&flags.Apply, "apply", false, "Apply recommended optimizations")
	flag.BoolVar(&flags.Apply, "a", false, "Apply recommended optimizations (shorthand)")
	flag.BoolVar(&flags.AutoApprove, "auto-approve", false, "Automatically approve all recommendations")
	flag.StringVar(&flags.Export, "export", "", "Export report to specified file")
	flag.StringVar(&flags.Export, "e", "", "Export report to specified file (shorthand)")
	flag.BoolVar(&flags.Chart, "chart", false, "Display a savings chart per bucket")

	flag.Parse()

	if flags.Project == "" {
		return model.Flags{}, errors.New("project is required (--project/-p)")
	}

	return flags, nil
}
