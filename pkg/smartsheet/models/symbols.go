package models

// ObjectType is the `objectType` discriminator of an object value.
type ObjectType string

const (
	ObjectAbstractDateTime ObjectType = "ABSTRACT_DATETIME"
	ObjectContact          ObjectType = "CONTACT"
	ObjectDate             ObjectType = "DATE"
	ObjectDateTime         ObjectType = "DATETIME"
	ObjectDuration         ObjectType = "DURATION"
	ObjectMultiContact     ObjectType = "MULTI_CONTACT"
	ObjectMultiPicklist    ObjectType = "MULTI_PICKLIST"
	ObjectPredecessorList  ObjectType = "PREDECESSOR_LIST"
)

// LightPicker is the option set of a "light picker" symbol column.
type LightPicker uint8

const (
	LightRed LightPicker = iota
	LightYellow
	LightGreen
	LightBlue
	LightGray
)

func (l LightPicker) String() string {
	switch l {
	case LightRed:
		return "Red"
	case LightYellow:
		return "Yellow"
	case LightGreen:
		return "Green"
	case LightBlue:
		return "Blue"
	case LightGray:
		return "Gray"
	default:
		return ""
	}
}

// CellValue returns the option as a Text value.
func (l LightPicker) CellValue() CellValue {
	return TextValue(l.String())
}

// Decision is the option set of a "decision" symbol column.
type Decision uint8

const (
	DecisionYes Decision = iota
	DecisionHold
	DecisionNo
)

func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "Yes"
	case DecisionHold:
		return "Hold"
	case DecisionNo:
		return "No"
	default:
		return ""
	}
}

// CellValue returns the option as a Text value.
func (d Decision) CellValue() CellValue {
	return TextValue(d.String())
}

// AccessLevel is the caller's permission level on a sheet or row.
type AccessLevel string

const (
	AccessAdmin       AccessLevel = "ADMIN"
	AccessEditor      AccessLevel = "EDITOR"
	AccessEditorShare AccessLevel = "EDITOR_SHARE"
	AccessOwner       AccessLevel = "OWNER"
	AccessViewer      AccessLevel = "VIEWER"
)
