package model

// Tag is the closed category set attached to a task. Unknown values are
// rejected at the form boundary before anything reaches persistence.
type Tag string

const (
	TagBirthday Tag = "Birthday"
	TagNone     Tag = "None"
	TagPersonal Tag = "Personal"
	TagUrgent   Tag = "Urgent"
	TagWork     Tag = "Work"
)

// Tags lists all valid tags in display order.
func Tags() []Tag {
	return []Tag{TagBirthday, TagNone, TagPersonal, TagUrgent, TagWork}
}

// Valid reports whether t is a member of the closed tag set.
func (t Tag) Valid() bool {
	switch t {
	case TagBirthday, TagNone, TagPersonal, TagUrgent, TagWork:
		return true
	}
	return false
}

func (t Tag) String() string {
	return string(t)
}
