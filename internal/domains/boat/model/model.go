package model

import (
	"boatsandjoy/shared/model"
)

const (
	TableName  = "boats"
	EntityName = "boat"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldActive      = "active"
)

type Boat struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Capacity    int    `db:"capacity"`
	Active      bool   `db:"active"`
	model.Metadata
}
