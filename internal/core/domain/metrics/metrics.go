package metrics

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailure  = "failure"
)

const (
	PathReset = "reset"
	PathAdmin = "admin"
)

type Recorder interface {
	EmailSent(kind string, outcome string)
	PasswordUpdated(path string, outcome string)
}

type NopRecorder struct{}

func (NopRecorder) EmailSent(kind string, outcome string) {}

func (NopRecorder) PasswordUpdated(path string, outcome string) {}
