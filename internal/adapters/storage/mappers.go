package storage

// assignmentModelsToLabels converts rows to action -> label, NULL chords become ""
func assignmentModelsToLabels(models []HotkeyAssignmentModel) map[string]string {
	labels := make(map[string]string, len(models))
	for _, m := range models {
		if m.Chord == nil {
			labels[m.Action] = ""
			continue
		}
		labels[m.Action] = *m.Chord
	}
	return labels
}

// labelsToAssignmentModels converts action -> label to rows, "" becomes NULL
func labelsToAssignmentModels(labels map[string]string) []HotkeyAssignmentModel {
	models := make([]HotkeyAssignmentModel, 0, len(labels))
	for action, label := range labels {
		m := HotkeyAssignmentModel{Action: action}
		if label != "" {
			chord := label
			m.Chord = &chord
		}
		models = append(models, m)
	}
	return models
}
