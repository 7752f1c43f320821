// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactInfoColumns holds the columns for the "contact_info" table.
	ContactInfoColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "organization", Type: field.TypeString, Nullable: true},
		{Name: "job_title", Type: field.TypeString, Nullable: true},
		{Name: "contact_number", Type: field.TypeString, Nullable: true},
		{Name: "business_email", Type: field.TypeString, Nullable: true},
		{Name: "business_url", Type: field.TypeString, Nullable: true},
		{Name: "street_address", Type: field.TypeString, Nullable: true},
		{Name: "location_city", Type: field.TypeString, Nullable: true},
		{Name: "location_state", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContactInfoTable holds the schema information for the "contact_info" table.
	ContactInfoTable = &schema.Table{
		Name:       "contact_info",
		Columns:    ContactInfoColumns,
		PrimaryKey: []*schema.Column{ContactInfoColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_full_name",
				Unique:  false,
				Columns: []*schema.Column{ContactInfoColumns[1]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactInfoColumns[12]},
			},
		},
	}
	// ScanJobColumns holds the columns for the "scan_job" table.
	ScanJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "line_count", Type: field.TypeInt, Default: 0},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "contact_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScanJobTable holds the schema information for the "scan_job" table.
	ScanJobTable = &schema.Table{
		Name:       "scan_job",
		Columns:    ScanJobColumns,
		PrimaryKey: []*schema.Column{ScanJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_job_contact_info_scans",
				Columns:    []*schema.Column{ScanJobColumns[11]},
				RefColumns: []*schema.Column{ContactInfoColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[5], ScanJobColumns[3]},
			},
			{
				Name:    "scanjob_contact_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactInfoTable,
		ScanJobTable,
	}
)

func init() {
	ContactInfoTable.Annotation = &entsql.Annotation{
		Table: "contact_info",
	}
	ScanJobTable.ForeignKeys[0].RefTable = ContactInfoTable
	ScanJobTable.Annotation = &entsql.Annotation{
		Table: "scan_job",
	}
}
