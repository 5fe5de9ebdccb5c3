// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "document_type", Type: field.TypeString, Default: "Other"},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "issue_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "document_number", Type: field.TypeString, Nullable: true},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_suppliers_documents",
				Columns:    []*schema.Column{DocumentsColumns[17]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[15]},
			},
		},
	}
	// ProcessJobsColumns holds the columns for the "process_jobs" table.
	ProcessJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "corrections", Type: field.TypeJSON, Nullable: true},
		{Name: "cache_hit", Type: field.TypeBool, Default: false},
		{Name: "raw_output", Type: field.TypeBytes, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ProcessJobsTable holds the schema information for the "process_jobs" table.
	ProcessJobsTable = &schema.Table{
		Name:       "process_jobs",
		Columns:    ProcessJobsColumns,
		PrimaryKey: []*schema.Column{ProcessJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_jobs_documents_jobs",
				Columns:    []*schema.Column{ProcessJobsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "normalized_name", Type: field.TypeString, Size: 255},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true},
		{Name: "contact_address", Type: field.TypeString, Nullable: true},
		{Name: "tax_id", Type: field.TypeString, Nullable: true},
		{Name: "total_spend", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "performance_rating", Type: field.TypeFloat64, Default: 2.5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "suspended"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supplier_tenant_id_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{SuppliersColumns[1], SuppliersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ProcessJobsTable,
		SuppliersTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = SuppliersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ProcessJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessJobsTable.Annotation = &entsql.Annotation{
		Table: "process_jobs",
	}
	SuppliersTable.Annotation = &entsql.Annotation{
		Table: "suppliers",
	}
}
