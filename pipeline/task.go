package pipeline

// Resource labels understood by the host scheduler. They are hints only;
// enforcement happens outside this process.
const (
	LabelLow    = "process_low"
	LabelMedium = "process_medium"
	LabelHigh   = "process_high"
)

// Task describes one scheduled stage invocation: the tag the host engine
// displays for it, the resource label it was submitted under, and the thread
// count handed to the external tool's internal parallelism.
type Task struct {
	Tag     string
	Label   string
	Threads int
}

// NewTask builds the task record for one sample. Variant extraction is cheap,
// so the stage always submits under the low-usage label.
func NewTask(sample Sample, threads int) Task {
	return Task{
		Tag:     sample.ID,
		Label:   LabelLow,
		Threads: threads,
	}
}
