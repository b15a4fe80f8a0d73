package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

func testShipmentID(t *testing.T) kernel.ShipmentID {
	t.Helper()
	id, err := kernel.NewShipmentID(kernel.GenerationCurrent, 123)
	require.NoError(t, err)
	return id
}

func testActor(t *testing.T, role account.Role) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), "actor@example.com", role)
	require.NoError(t, err)
	return actor
}

func forwarderAssignee(t *testing.T) Assignee {
	t.Helper()
	a, err := NewAssignee(PartyForwarder, "")
	require.NoError(t, err)
	return a
}

func newTestTask(t *testing.T, taskType Type, legLevel int, mode Mode) *Task {
	t.Helper()
	tk, err := NewTask(
		kernel.NewUUID(),
		testShipmentID(t),
		taskType,
		legLevel,
		mode,
		VisibilityVisible,
		forwarderAssignee(t),
	)
	require.NoError(t, err)
	return tk
}

func Test_NewTask(t *testing.T) {
	tk := newTestTask(t, TypeOriginHaulage, 1, ModeAssigned)

	assert.NoError(t, tk.Validate())
	assert.Equal(t, StatusPending, tk.Status())
	assert.Equal(t, ModeAssigned, tk.Mode())
	assert.Equal(t, VisibilityVisible, tk.Visibility())
	assert.Nil(t, tk.CompletedAt())
}

func Test_NewTask_Invalid(t *testing.T) {
	shipmentID := testShipmentID(t)
	assignee := forwarderAssignee(t)

	tests := []struct {
		name     string
		id       kernel.UUID
		taskType Type
		legLevel int
		mode     Mode
	}{
		{"zero id", kernel.UUID{}, TypeOriginHaulage, 1, ModeAssigned},
		{"unknown type", kernel.NewUUID(), UnknownType, 1, ModeAssigned},
		{"zero leg level", kernel.NewUUID(), TypeOriginHaulage, 0, ModeAssigned},
		{"unknown mode", kernel.NewUUID(), TypeOriginHaulage, 1, UnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.id, shipmentID, tt.taskType, tt.legLevel, tt.mode, VisibilityVisible, assignee)
			assert.Error(t, err)
		})
	}
}

func Test_Task_Validate_NotConstructed(t *testing.T) {
	var tk Task
	assert.ErrorIs(t, tk.Validate(), ErrTaskIsNotConstructed)
}

func Test_MarkComplete_StampsActualEnd(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, tk.MarkComplete(testActor(t, account.RoleOperator), now))

	assert.Equal(t, StatusCompleted, tk.Status())
	require.NotNil(t, tk.ActualEnd())
	assert.Equal(t, now, *tk.ActualEnd())
	assert.Nil(t, tk.ActualStart())
	require.NotNil(t, tk.CompletedAt())
	assert.Equal(t, now, *tk.CompletedAt())
}

func Test_MarkComplete_TrackedArrivalLeg_StampsActualStart(t *testing.T) {
	tk := newTestTask(t, TypePortOfDischarge, 5, ModeTracked)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, tk.MarkComplete(testActor(t, account.RoleOperator), now))

	require.NotNil(t, tk.ActualStart())
	assert.Equal(t, now, *tk.ActualStart())
	assert.Nil(t, tk.ActualEnd())
}

func Test_MarkComplete_TrackedDepartureLeg_StampsActualEnd(t *testing.T) {
	// Port of loading is tracked but is not the arrival leg, so the stamp
	// still lands in the actual-end field (ATD).
	tk := newTestTask(t, TypePortOfLoading, 4, ModeTracked)

	require.NoError(t, tk.MarkComplete(testActor(t, account.RoleOperator), time.Now()))

	assert.Nil(t, tk.ActualStart())
	assert.NotNil(t, tk.ActualEnd())
}

func Test_MarkComplete_CustomerCannotCompleteTracked(t *testing.T) {
	tk := newTestTask(t, TypePortOfLoading, 4, ModeTracked)

	err := tk.MarkComplete(testActor(t, account.RoleCustomerAdmin), time.Now())

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, StatusPending, tk.Status())
}

func Test_MarkComplete_CustomerUserDenied(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)

	err := tk.MarkComplete(testActor(t, account.RoleCustomerUser), time.Now())

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func Test_MarkComplete_AlreadyCompleted(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)
	operator := testActor(t, account.RoleOperator)
	require.NoError(t, tk.MarkComplete(operator, time.Now()))

	err := tk.MarkComplete(operator, time.Now())

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_UndoComplete_ClearsStampedField(t *testing.T) {
	tests := []struct {
		name     string
		taskType Type
		mode     Mode
		cleared  func(*Task) *time.Time
	}{
		{"assigned task clears actual end", TypeExportClearance, ModeAssigned, (*Task).ActualEnd},
		{"tracked arrival leg clears actual start", TypePortOfDischarge, ModeTracked, (*Task).ActualStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTask(t, tt.taskType, 5, tt.mode)
			operator := testActor(t, account.RoleOperator)
			require.NoError(t, tk.MarkComplete(operator, time.Now()))

			require.NoError(t, tk.UndoComplete(operator))

			assert.Equal(t, StatusPending, tk.Status())
			assert.Nil(t, tt.cleared(tk))
			assert.Nil(t, tk.CompletedAt())
		})
	}
}

func Test_UndoComplete_AfterModeChangeClearsStampedField(t *testing.T) {
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	t.Run("tracked arrival leg reassigned after completion", func(t *testing.T) {
		tk := newTestTask(t, TypePortOfDischarge, 5, ModeTracked)
		operator := testActor(t, account.RoleOperator)
		require.NoError(t, tk.MarkComplete(operator, now))
		require.NoError(t, tk.Apply(operator, Patch{Mode: modePtr(ModeAssigned)}))

		require.NoError(t, tk.UndoComplete(operator))

		assert.Equal(t, StatusPending, tk.Status())
		assert.Nil(t, tk.ActualStart())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("assigned arrival leg tracked after completion", func(t *testing.T) {
		tk := newTestTask(t, TypePortOfDischarge, 5, ModeAssigned)
		operator := testActor(t, account.RoleOperator)
		require.NoError(t, tk.MarkComplete(operator, now))
		require.NoError(t, tk.Apply(operator, Patch{Mode: modePtr(ModeTracked)}))

		require.NoError(t, tk.UndoComplete(operator))

		assert.Equal(t, StatusPending, tk.Status())
		assert.Nil(t, tk.ActualEnd())
		assert.Nil(t, tk.CompletedAt())
	})
}

func Test_UndoComplete_NotCompleted(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)

	err := tk.UndoComplete(testActor(t, account.RoleOperator))

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Block(t *testing.T) {
	tk := newTestTask(t, TypeFreightBooking, 2, ModeAssigned)

	require.NoError(t, tk.Block())
	assert.Equal(t, StatusBlocked, tk.Status())

	require.NoError(t, tk.Unblock())
	assert.Equal(t, StatusPending, tk.Status())
}

func Test_Block_TrackedTaskRejected(t *testing.T) {
	tk := newTestTask(t, TypePortOfLoading, 4, ModeTracked)

	assert.ErrorIs(t, tk.Block(), errs.ErrValueIsInvalid)
}

func Test_Block_CompletedTaskRejected(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)
	require.NoError(t, tk.MarkComplete(testActor(t, account.RoleOperator), time.Now()))

	assert.ErrorIs(t, tk.Block(), errs.ErrValueIsInvalid)
}

func Test_Unblock_NotBlocked(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)

	assert.ErrorIs(t, tk.Unblock(), errs.ErrValueIsInvalid)
}

func statusPtr(s Status) *Status             { return &s }
func modePtr(m Mode) *Mode                   { return &m }
func visibilityPtr(v Visibility) *Visibility { return &v }

func Test_Apply_StatusEdit(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)

	err := tk.Apply(testActor(t, account.RoleOperator), Patch{Status: statusPtr(StatusInProgress)})

	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, tk.Status())
}

func Test_Apply_CompletionViaPatchRejected(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)

	err := tk.Apply(testActor(t, account.RoleOperator), Patch{Status: statusPtr(StatusCompleted)})

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Apply_CompletedTaskRejectsStatusEdit(t *testing.T) {
	tk := newTestTask(t, TypeExportClearance, 3, ModeAssigned)
	require.NoError(t, tk.MarkComplete(testActor(t, account.RoleOperator), time.Now()))

	err := tk.Apply(testActor(t, account.RoleOperator), Patch{Status: statusPtr(StatusPending)})

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, StatusCompleted, tk.Status())
}

func Test_Apply_TrackedBlockedCombinationRejected(t *testing.T) {
	t.Run("blocking a tracked task", func(t *testing.T) {
		tk := newTestTask(t, TypePortOfLoading, 4, ModeTracked)

		err := tk.Apply(testActor(t, account.RoleOperator), Patch{Status: statusPtr(StatusBlocked)})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("tracking a blocked task", func(t *testing.T) {
		tk := newTestTask(t, TypeFreightBooking, 2, ModeAssigned)
		require.NoError(t, tk.Block())

		err := tk.Apply(testActor(t, account.RoleOperator), Patch{Mode: modePtr(ModeTracked)})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, ModeAssigned, tk.Mode())
	})

	t.Run("tracking and unblocking in one patch", func(t *testing.T) {
		tk := newTestTask(t, TypeFreightBooking, 2, ModeAssigned)
		require.NoError(t, tk.Block())

		err := tk.Apply(testActor(t, account.RoleOperator), Patch{
			Mode:   modePtr(ModeTracked),
			Status: statusPtr(StatusPending),
		})

		require.NoError(t, err)
		assert.Equal(t, ModeTracked, tk.Mode())
		assert.Equal(t, StatusPending, tk.Status())
	})
}

func Test_Apply_PresentationRequiresInternal(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
	}{
		{"mode", Patch{Mode: modePtr(ModeIgnored)}},
		{"visibility", Patch{Visibility: visibilityPtr(VisibilityHidden)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTask(t, TypeFreightBooking, 2, ModeAssigned)

			err := tk.Apply(testActor(t, account.RoleCustomerAdmin), tt.patch)

			assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		})
	}
}

func Test_Apply_CustomerAdminMayEditOtherFields(t *testing.T) {
	tk := newTestTask(t, TypeFreightBooking, 2, ModeAssigned)
	notes := "awaiting carrier confirmation"

	err := tk.Apply(testActor(t, account.RoleCustomerAdmin), Patch{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, notes, tk.Notes())
}

func Test_Apply_DueDateSetsOverride(t *testing.T) {
	tk := newTestTask(t, TypeFreightBooking, 2, ModeAssigned)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, tk.Apply(testActor(t, account.RoleOperator), Patch{DueDate: &due}))

	require.NotNil(t, tk.DueDate())
	assert.Equal(t, due, *tk.DueDate())
	assert.True(t, tk.DueDateOverride())
}

func Test_Apply_AssigneeChange(t *testing.T) {
	tk := newTestTask(t, TypeImportClearance, 6, ModeAssigned)
	broker, err := NewAssignee(PartyThirdParty, "Acme Customs Brokers")
	require.NoError(t, err)

	require.NoError(t, tk.Apply(testActor(t, account.RoleOperator), Patch{Assignee: &broker}))

	assert.Equal(t, PartyThirdParty, tk.Assignee().Party())
	assert.Equal(t, "Acme Customs Brokers", tk.Assignee().ThirdPartyName())
}

func Test_RestoreTask_RejectsTrackedBlocked(t *testing.T) {
	_, err := RestoreTask(
		kernel.NewUUID(),
		testShipmentID(t),
		TypePortOfLoading,
		4,
		StatusBlocked,
		ModeTracked,
		VisibilityVisible,
		forwarderAssignee(t),
		nil, nil, nil, nil,
		nil, false,
		"", "", nil,
	)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_DisplayLabel(t *testing.T) {
	tests := []struct {
		name       string
		taskType   Type
		stored     string
		looseCargo bool
		want       string
	}{
		{"stored label wins", TypeExportClearance, "Export customs — Rotterdam", false, "Export customs — Rotterdam"},
		{"empty falls back to type label", TypeExportClearance, "", false, "Export clearance"},
		{"stale label is replaced", TypeOriginHaulage, "Trucking to port", false, "Origin haulage"},
		{"stale customs label", TypeImportClearance, "Customs", false, "Import clearance"},
		{"loose cargo first leg", TypeOriginHaulage, "Origin haulage", true, "Pickup"},
		{"loose cargo last leg", TypeDestinationHaulage, "Trucking from port", true, "Delivery"},
		{"loose cargo middle leg keeps stored label", TypeExportClearance, "Export docs", true, "Export docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := RestoreTask(
				kernel.NewUUID(),
				testShipmentID(t),
				tt.taskType,
				1,
				StatusPending,
				ModeAssigned,
				VisibilityVisible,
				forwarderAssignee(t),
				nil, nil, nil, nil,
				nil, false,
				"", tt.stored, nil,
			)
			require.NoError(t, err)

			assert.Equal(t, tt.want, tk.DisplayLabel(tt.looseCargo))
		})
	}
}

func Test_TimingView(t *testing.T) {
	t.Run("assigned task uses generic labels", func(t *testing.T) {
		view := newTestTask(t, TypeExportClearance, 3, ModeAssigned).TimingView()

		assert.Equal(t, "Scheduled start", view.ScheduledStartLabel)
		assert.Equal(t, "Actual end", view.ActualEndLabel)
		assert.False(t, view.EndSuppressed)
	})

	t.Run("tracked task uses schedule vocabulary", func(t *testing.T) {
		view := newTestTask(t, TypePortOfLoading, 4, ModeTracked).TimingView()

		assert.Equal(t, "ETA", view.ScheduledStartLabel)
		assert.Equal(t, "ETD", view.ScheduledEndLabel)
		assert.Equal(t, "ATA", view.ActualStartLabel)
		assert.Equal(t, "ATD", view.ActualEndLabel)
		assert.False(t, view.EndSuppressed)
	})

	t.Run("tracked arrival leg suppresses end fields", func(t *testing.T) {
		view := newTestTask(t, TypePortOfDischarge, 5, ModeTracked).TimingView()

		assert.True(t, view.EndSuppressed)
	})
}

func Test_NextLegAdvisory(t *testing.T) {
	operator := testActor(t, account.RoleOperator)

	clearance := newTestTask(t, TypeExportClearance, 3, ModeAssigned)
	pol := newTestTask(t, TypePortOfLoading, 4, ModeTracked)
	pod := newTestTask(t, TypePortOfDischarge, 5, ModeTracked)
	all := []*Task{clearance, pol, pod}

	t.Run("pending next leg is flagged", func(t *testing.T) {
		require.NoError(t, clearance.MarkComplete(operator, time.Now()))
		defer func() { require.NoError(t, clearance.UndoComplete(operator)) }()

		advisory := NextLegAdvisory(all, clearance, false)

		assert.Equal(t, `next leg "Port of loading" has not been started`, advisory)
	})

	t.Run("no advisory for incomplete task", func(t *testing.T) {
		assert.Empty(t, NextLegAdvisory(all, clearance, false))
	})

	t.Run("no advisory past the last leg", func(t *testing.T) {
		require.NoError(t, pod.MarkComplete(operator, time.Now()))
		defer func() { require.NoError(t, pod.UndoComplete(operator)) }()

		assert.Empty(t, NextLegAdvisory(all, pod, false))
	})
}
