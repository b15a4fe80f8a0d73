package task

// TimingView carries the presentation vocabulary for a task's four timestamp
// fields. The underlying storage is identical for every mode; only the labels
// and the end-field suppression differ.
type TimingView struct {
	ScheduledStartLabel string
	ScheduledEndLabel   string
	ActualStartLabel    string
	ActualEndLabel      string

	// EndSuppressed is set for a tracked arrival leg: the port of discharge
	// shows arrival fields only, since departure is not a meaningful signal
	// there.
	EndSuppressed bool
}

// TimingVocabulary returns the timing labels for a mode/type pair. TRACKED
// tasks use carrier schedule terms (ETA/ETD/ATA/ATD); everything else uses
// plain scheduled/actual wording.
func TimingVocabulary(mode Mode, taskType Type) TimingView {
	if mode == ModeTracked {
		return TimingView{
			ScheduledStartLabel: "ETA",
			ScheduledEndLabel:   "ETD",
			ActualStartLabel:    "ATA",
			ActualEndLabel:      "ATD",
			EndSuppressed:       taskType.IsArrivalLeg(),
		}
	}
	return TimingView{
		ScheduledStartLabel: "Scheduled start",
		ScheduledEndLabel:   "Scheduled end",
		ActualStartLabel:    "Actual start",
		ActualEndLabel:      "Actual end",
	}
}

// TimingView returns the timing vocabulary for the task's current mode.
func (t *Task) TimingView() TimingView {
	return TimingVocabulary(t.mode, t.taskType)
}
