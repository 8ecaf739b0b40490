package model

type Flags struct {
	Project     string
	Credentials string
	Apply       bool
	AutoApprove bool
	Export      string
	Chart       bool
}
