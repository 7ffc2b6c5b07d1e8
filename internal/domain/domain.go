package domain

import (
	"github.com/focusbridge/focusbridge-backend/internal/domain/lessons"
	"github.com/focusbridge/focusbridge-backend/internal/domain/user"
)

// Flat aliases so call sites can import one package as `types`.
type (
	Profile   = user.Profile
	UserToken = user.UserToken

	LessonPlan    = lessons.LessonPlan
	CoachingTip   = lessons.CoachingTip
	BreakReminder = lessons.BreakReminder
	Visualizer    = lessons.Visualizer
	TeacherNote   = lessons.TeacherNote
)

const (
	RoleTeacher = user.RoleTeacher
	RoleParent  = user.RoleParent

	TipTypeEngagement = lessons.TipTypeEngagement
	TipTypeBreak      = lessons.TipTypeBreak
	TipTypeVisual     = lessons.TipTypeVisual
	TipTypeMovement   = lessons.TipTypeMovement
	TipTypeAttention  = lessons.TipTypeAttention

	NoteTypeBehavioral = lessons.NoteTypeBehavioral
	NoteTypeAcademic   = lessons.NoteTypeAcademic
	NoteTypeGeneral    = lessons.NoteTypeGeneral
)
