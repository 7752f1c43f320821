// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cardkeep/cardkeep/db/ent/schema"
	"github.com/cardkeep/cardkeep/gen/ent/contact"
	"github.com/cardkeep/cardkeep/gen/ent/scanjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[12].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[13].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescSourcePath is the schema descriptor for source_path field.
	scanjobDescSourcePath := scanjobFields[2].Descriptor()
	// scanjob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	scanjob.SourcePathValidator = scanjobDescSourcePath.Validators[0].(func(string) error)
	// scanjobDescFormat is the schema descriptor for format field.
	scanjobDescFormat := scanjobFields[3].Descriptor()
	// scanjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	scanjob.FormatValidator = func() func(string) error {
		validators := scanjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[4].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescLineCount is the schema descriptor for line_count field.
	scanjobDescLineCount := scanjobFields[9].Descriptor()
	// scanjob.DefaultLineCount holds the default value on creation for the line_count field.
	scanjob.DefaultLineCount = scanjobDescLineCount.Default.(int)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
