package task

// staleDisplayNames lists stored labels written before the workflow wording
// was reworked. Rows carrying one of these are relabelled on read; the stored
// value is left untouched.
var staleDisplayNames = map[string]struct{}{
	"Trucking to port":   {},
	"Trucking from port": {},
	"Customs":            {},
	"Carrier booking":    {},
	"Port call":          {},
}

func getTypeLabels() map[Type]string {
	return map[Type]string{
		TypeOriginHaulage:      "Origin haulage",
		TypeFreightBooking:     "Freight booking",
		TypeExportClearance:    "Export clearance",
		TypePortOfLoading:      "Port of loading",
		TypePortOfDischarge:    "Port of discharge",
		TypeImportClearance:    "Import clearance",
		TypeDestinationHaulage: "Destination haulage",
	}
}

// DeriveDisplayLabel computes the label shown to users from the stored display
// name and the task type.
//
// The stored name wins unless it is empty or one of the known stale labels, in
// which case the type's current label is used. For loose cargo (LCL or air),
// the first and last physical legs always read "Pickup" and "Delivery",
// whatever the stored name says.
func DeriveDisplayLabel(taskType Type, storedName string, looseCargo bool) string {
	if looseCargo {
		if taskType.IsFirstLeg() {
			return "Pickup"
		}
		if taskType.IsLastLeg() {
			return "Delivery"
		}
	}

	if storedName != "" {
		if _, stale := staleDisplayNames[storedName]; !stale {
			return storedName
		}
	}
	return getTypeLabels()[taskType]
}

// DisplayLabel derives the label shown to users for this task.
func (t *Task) DisplayLabel(looseCargo bool) string {
	return DeriveDisplayLabel(t.taskType, t.displayName, looseCargo)
}
