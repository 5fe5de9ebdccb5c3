// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/procurement-tracker/db/ent/schema"
	"github.com/procurehq/procurement-tracker/gen/ent/document"
	"github.com/procurehq/procurement-tracker/gen/ent/processjob"
	"github.com/procurehq/procurement-tracker/gen/ent/supplier"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[2].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = func() func(string) error {
		validators := documentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[3].Descriptor()
	// document.DefaultDocumentType holds the default value on creation for the document_type field.
	document.DefaultDocumentType = documentDescDocumentType.Default.(string)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// documentDescSupplierName is the schema descriptor for supplier_name field.
	documentDescSupplierName := documentFields[7].Descriptor()
	// document.SupplierNameValidator is a validator for the "supplier_name" field. It is called by the builders before save.
	document.SupplierNameValidator = documentDescSupplierName.Validators[0].(func(string) error)
	// documentDescCurrency is the schema descriptor for currency field.
	documentDescCurrency := documentFields[9].Descriptor()
	// document.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	document.CurrencyValidator = func() func(string) error {
		validators := documentDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescProcessed is the schema descriptor for processed field.
	documentDescProcessed := documentFields[15].Descriptor()
	// document.DefaultProcessed holds the default value on creation for the processed field.
	document.DefaultProcessed = documentDescProcessed.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[16].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[17].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	processjobFields := schema.ProcessJob{}.Fields()
	_ = processjobFields
	// processjobDescStatus is the schema descriptor for status field.
	processjobDescStatus := processjobFields[2].Descriptor()
	// processjob.DefaultStatus holds the default value on creation for the status field.
	processjob.DefaultStatus = processjobDescStatus.Default.(string)
	// processjobDescCacheHit is the schema descriptor for cache_hit field.
	processjobDescCacheHit := processjobFields[6].Descriptor()
	// processjob.DefaultCacheHit holds the default value on creation for the cache_hit field.
	processjob.DefaultCacheHit = processjobDescCacheHit.Default.(bool)
	// processjobDescStartedAt is the schema descriptor for started_at field.
	processjobDescStartedAt := processjobFields[9].Descriptor()
	// processjob.DefaultStartedAt holds the default value on creation for the started_at field.
	processjob.DefaultStartedAt = processjobDescStartedAt.Default.(func() time.Time)
	// processjobDescID is the schema descriptor for id field.
	processjobDescID := processjobFields[0].Descriptor()
	// processjob.DefaultID holds the default value on creation for the id field.
	processjob.DefaultID = processjobDescID.Default.(func() uuid.UUID)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescName is the schema descriptor for name field.
	supplierDescName := supplierFields[2].Descriptor()
	// supplier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supplier.NameValidator = func() func(string) error {
		validators := supplierDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// supplierDescNormalizedName is the schema descriptor for normalized_name field.
	supplierDescNormalizedName := supplierFields[3].Descriptor()
	// supplier.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	supplier.NormalizedNameValidator = func() func(string) error {
		validators := supplierDescNormalizedName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(normalized_name string) error {
			for _, fn := range fns {
				if err := fn(normalized_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// supplierDescTotalSpend is the schema descriptor for total_spend field.
	supplierDescTotalSpend := supplierFields[8].Descriptor()
	// supplier.DefaultTotalSpend holds the default value on creation for the total_spend field.
	supplier.DefaultTotalSpend = supplierDescTotalSpend.Default.(float64)
	// supplier.TotalSpendValidator is a validator for the "total_spend" field. It is called by the builders before save.
	supplier.TotalSpendValidator = supplierDescTotalSpend.Validators[0].(func(float64) error)
	// supplierDescPerformanceRating is the schema descriptor for performance_rating field.
	supplierDescPerformanceRating := supplierFields[9].Descriptor()
	// supplier.DefaultPerformanceRating holds the default value on creation for the performance_rating field.
	supplier.DefaultPerformanceRating = supplierDescPerformanceRating.Default.(float64)
	// supplier.PerformanceRatingValidator is a validator for the "performance_rating" field. It is called by the builders before save.
	supplier.PerformanceRatingValidator = func() func(float64) error {
		validators := supplierDescPerformanceRating.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(performance_rating float64) error {
			for _, fn := range fns {
				if err := fn(performance_rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[11].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	// supplierDescUpdatedAt is the schema descriptor for updated_at field.
	supplierDescUpdatedAt := supplierFields[12].Descriptor()
	// supplier.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplier.DefaultUpdatedAt = supplierDescUpdatedAt.Default.(func() time.Time)
	// supplier.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplier.UpdateDefaultUpdatedAt = supplierDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supplierDescID is the schema descriptor for id field.
	supplierDescID := supplierFields[0].Descriptor()
	// supplier.DefaultID holds the default value on creation for the id field.
	supplier.DefaultID = supplierDescID.Default.(func() uuid.UUID)
}
