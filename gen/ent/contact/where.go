// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cardkeep/cardkeep/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldID, id))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFullName, v))
}

// Organization applies equality check predicate on the "organization" field. It's identical to OrganizationEQ.
func Organization(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldOrganization, v))
}

// JobTitle applies equality check predicate on the "job_title" field. It's identical to JobTitleEQ.
func JobTitle(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldJobTitle, v))
}

// ContactNumber applies equality check predicate on the "contact_number" field. It's identical to ContactNumberEQ.
func ContactNumber(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldContactNumber, v))
}

// BusinessEmail applies equality check predicate on the "business_email" field. It's identical to BusinessEmailEQ.
func BusinessEmail(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldBusinessEmail, v))
}

// BusinessURL applies equality check predicate on the "business_url" field. It's identical to BusinessURLEQ.
func BusinessURL(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldBusinessURL, v))
}

// StreetAddress applies equality check predicate on the "street_address" field. It's identical to StreetAddressEQ.
func StreetAddress(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStreetAddress, v))
}

// LocationCity applies equality check predicate on the "location_city" field. It's identical to LocationCityEQ.
func LocationCity(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLocationCity, v))
}

// LocationState applies equality check predicate on the "location_state" field. It's identical to LocationStateEQ.
func LocationState(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLocationState, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPostalCode, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameIsNil applies the IsNil predicate on the "full_name" field.
func FullNameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldFullName))
}

// FullNameNotNil applies the NotNil predicate on the "full_name" field.
func FullNameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldFullName))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldFullName, v))
}

// OrganizationEQ applies the EQ predicate on the "organization" field.
func OrganizationEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldOrganization, v))
}

// OrganizationNEQ applies the NEQ predicate on the "organization" field.
func OrganizationNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldOrganization, v))
}

// OrganizationIn applies the In predicate on the "organization" field.
func OrganizationIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldOrganization, vs...))
}

// OrganizationNotIn applies the NotIn predicate on the "organization" field.
func OrganizationNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldOrganization, vs...))
}

// OrganizationGT applies the GT predicate on the "organization" field.
func OrganizationGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldOrganization, v))
}

// OrganizationGTE applies the GTE predicate on the "organization" field.
func OrganizationGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldOrganization, v))
}

// OrganizationLT applies the LT predicate on the "organization" field.
func OrganizationLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldOrganization, v))
}

// OrganizationLTE applies the LTE predicate on the "organization" field.
func OrganizationLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldOrganization, v))
}

// OrganizationContains applies the Contains predicate on the "organization" field.
func OrganizationContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldOrganization, v))
}

// OrganizationHasPrefix applies the HasPrefix predicate on the "organization" field.
func OrganizationHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldOrganization, v))
}

// OrganizationHasSuffix applies the HasSuffix predicate on the "organization" field.
func OrganizationHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldOrganization, v))
}

// OrganizationIsNil applies the IsNil predicate on the "organization" field.
func OrganizationIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldOrganization))
}

// OrganizationNotNil applies the NotNil predicate on the "organization" field.
func OrganizationNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldOrganization))
}

// OrganizationEqualFold applies the EqualFold predicate on the "organization" field.
func OrganizationEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldOrganization, v))
}

// OrganizationContainsFold applies the ContainsFold predicate on the "organization" field.
func OrganizationContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldOrganization, v))
}

// JobTitleEQ applies the EQ predicate on the "job_title" field.
func JobTitleEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldJobTitle, v))
}

// JobTitleNEQ applies the NEQ predicate on the "job_title" field.
func JobTitleNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldJobTitle, v))
}

// JobTitleIn applies the In predicate on the "job_title" field.
func JobTitleIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldJobTitle, vs...))
}

// JobTitleNotIn applies the NotIn predicate on the "job_title" field.
func JobTitleNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldJobTitle, vs...))
}

// JobTitleGT applies the GT predicate on the "job_title" field.
func JobTitleGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldJobTitle, v))
}

// JobTitleGTE applies the GTE predicate on the "job_title" field.
func JobTitleGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldJobTitle, v))
}

// JobTitleLT applies the LT predicate on the "job_title" field.
func JobTitleLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldJobTitle, v))
}

// JobTitleLTE applies the LTE predicate on the "job_title" field.
func JobTitleLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldJobTitle, v))
}

// JobTitleContains applies the Contains predicate on the "job_title" field.
func JobTitleContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldJobTitle, v))
}

// JobTitleHasPrefix applies the HasPrefix predicate on the "job_title" field.
func JobTitleHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldJobTitle, v))
}

// JobTitleHasSuffix applies the HasSuffix predicate on the "job_title" field.
func JobTitleHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldJobTitle, v))
}

// JobTitleIsNil applies the IsNil predicate on the "job_title" field.
func JobTitleIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldJobTitle))
}

// JobTitleNotNil applies the NotNil predicate on the "job_title" field.
func JobTitleNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldJobTitle))
}

// JobTitleEqualFold applies the EqualFold predicate on the "job_title" field.
func JobTitleEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldJobTitle, v))
}

// JobTitleContainsFold applies the ContainsFold predicate on the "job_title" field.
func JobTitleContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldJobTitle, v))
}

// ContactNumberEQ applies the EQ predicate on the "contact_number" field.
func ContactNumberEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldContactNumber, v))
}

// ContactNumberNEQ applies the NEQ predicate on the "contact_number" field.
func ContactNumberNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldContactNumber, v))
}

// ContactNumberIn applies the In predicate on the "contact_number" field.
func ContactNumberIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldContactNumber, vs...))
}

// ContactNumberNotIn applies the NotIn predicate on the "contact_number" field.
func ContactNumberNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldContactNumber, vs...))
}

// ContactNumberGT applies the GT predicate on the "contact_number" field.
func ContactNumberGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldContactNumber, v))
}

// ContactNumberGTE applies the GTE predicate on the "contact_number" field.
func ContactNumberGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldContactNumber, v))
}

// ContactNumberLT applies the LT predicate on the "contact_number" field.
func ContactNumberLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldContactNumber, v))
}

// ContactNumberLTE applies the LTE predicate on the "contact_number" field.
func ContactNumberLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldContactNumber, v))
}

// ContactNumberContains applies the Contains predicate on the "contact_number" field.
func ContactNumberContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldContactNumber, v))
}

// ContactNumberHasPrefix applies the HasPrefix predicate on the "contact_number" field.
func ContactNumberHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldContactNumber, v))
}

// ContactNumberHasSuffix applies the HasSuffix predicate on the "contact_number" field.
func ContactNumberHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldContactNumber, v))
}

// ContactNumberIsNil applies the IsNil predicate on the "contact_number" field.
func ContactNumberIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldContactNumber))
}

// ContactNumberNotNil applies the NotNil predicate on the "contact_number" field.
func ContactNumberNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldContactNumber))
}

// ContactNumberEqualFold applies the EqualFold predicate on the "contact_number" field.
func ContactNumberEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldContactNumber, v))
}

// ContactNumberContainsFold applies the ContainsFold predicate on the "contact_number" field.
func ContactNumberContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldContactNumber, v))
}

// BusinessEmailEQ applies the EQ predicate on the "business_email" field.
func BusinessEmailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldBusinessEmail, v))
}

// BusinessEmailNEQ applies the NEQ predicate on the "business_email" field.
func BusinessEmailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldBusinessEmail, v))
}

// BusinessEmailIn applies the In predicate on the "business_email" field.
func BusinessEmailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldBusinessEmail, vs...))
}

// BusinessEmailNotIn applies the NotIn predicate on the "business_email" field.
func BusinessEmailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldBusinessEmail, vs...))
}

// BusinessEmailGT applies the GT predicate on the "business_email" field.
func BusinessEmailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldBusinessEmail, v))
}

// BusinessEmailGTE applies the GTE predicate on the "business_email" field.
func BusinessEmailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldBusinessEmail, v))
}

// BusinessEmailLT applies the LT predicate on the "business_email" field.
func BusinessEmailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldBusinessEmail, v))
}

// BusinessEmailLTE applies the LTE predicate on the "business_email" field.
func BusinessEmailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldBusinessEmail, v))
}

// BusinessEmailContains applies the Contains predicate on the "business_email" field.
func BusinessEmailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldBusinessEmail, v))
}

// BusinessEmailHasPrefix applies the HasPrefix predicate on the "business_email" field.
func BusinessEmailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldBusinessEmail, v))
}

// BusinessEmailHasSuffix applies the HasSuffix predicate on the "business_email" field.
func BusinessEmailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldBusinessEmail, v))
}

// BusinessEmailIsNil applies the IsNil predicate on the "business_email" field.
func BusinessEmailIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldBusinessEmail))
}

// BusinessEmailNotNil applies the NotNil predicate on the "business_email" field.
func BusinessEmailNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldBusinessEmail))
}

// BusinessEmailEqualFold applies the EqualFold predicate on the "business_email" field.
func BusinessEmailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldBusinessEmail, v))
}

// BusinessEmailContainsFold applies the ContainsFold predicate on the "business_email" field.
func BusinessEmailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldBusinessEmail, v))
}

// BusinessURLEQ applies the EQ predicate on the "business_url" field.
func BusinessURLEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldBusinessURL, v))
}

// BusinessURLNEQ applies the NEQ predicate on the "business_url" field.
func BusinessURLNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldBusinessURL, v))
}

// BusinessURLIn applies the In predicate on the "business_url" field.
func BusinessURLIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldBusinessURL, vs...))
}

// BusinessURLNotIn applies the NotIn predicate on the "business_url" field.
func BusinessURLNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldBusinessURL, vs...))
}

// BusinessURLGT applies the GT predicate on the "business_url" field.
func BusinessURLGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldBusinessURL, v))
}

// BusinessURLGTE applies the GTE predicate on the "business_url" field.
func BusinessURLGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldBusinessURL, v))
}

// BusinessURLLT applies the LT predicate on the "business_url" field.
func BusinessURLLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldBusinessURL, v))
}

// BusinessURLLTE applies the LTE predicate on the "business_url" field.
func BusinessURLLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldBusinessURL, v))
}

// BusinessURLContains applies the Contains predicate on the "business_url" field.
func BusinessURLContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldBusinessURL, v))
}

// BusinessURLHasPrefix applies the HasPrefix predicate on the "business_url" field.
func BusinessURLHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldBusinessURL, v))
}

// BusinessURLHasSuffix applies the HasSuffix predicate on the "business_url" field.
func BusinessURLHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldBusinessURL, v))
}

// BusinessURLIsNil applies the IsNil predicate on the "business_url" field.
func BusinessURLIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldBusinessURL))
}

// BusinessURLNotNil applies the NotNil predicate on the "business_url" field.
func BusinessURLNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldBusinessURL))
}

// BusinessURLEqualFold applies the EqualFold predicate on the "business_url" field.
func BusinessURLEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldBusinessURL, v))
}

// BusinessURLContainsFold applies the ContainsFold predicate on the "business_url" field.
func BusinessURLContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldBusinessURL, v))
}

// StreetAddressEQ applies the EQ predicate on the "street_address" field.
func StreetAddressEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStreetAddress, v))
}

// StreetAddressNEQ applies the NEQ predicate on the "street_address" field.
func StreetAddressNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldStreetAddress, v))
}

// StreetAddressIn applies the In predicate on the "street_address" field.
func StreetAddressIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldStreetAddress, vs...))
}

// StreetAddressNotIn applies the NotIn predicate on the "street_address" field.
func StreetAddressNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldStreetAddress, vs...))
}

// StreetAddressGT applies the GT predicate on the "street_address" field.
func StreetAddressGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldStreetAddress, v))
}

// StreetAddressGTE applies the GTE predicate on the "street_address" field.
func StreetAddressGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldStreetAddress, v))
}

// StreetAddressLT applies the LT predicate on the "street_address" field.
func StreetAddressLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldStreetAddress, v))
}

// StreetAddressLTE applies the LTE predicate on the "street_address" field.
func StreetAddressLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldStreetAddress, v))
}

// StreetAddressContains applies the Contains predicate on the "street_address" field.
func StreetAddressContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldStreetAddress, v))
}

// StreetAddressHasPrefix applies the HasPrefix predicate on the "street_address" field.
func StreetAddressHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldStreetAddress, v))
}

// StreetAddressHasSuffix applies the HasSuffix predicate on the "street_address" field.
func StreetAddressHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldStreetAddress, v))
}

// StreetAddressIsNil applies the IsNil predicate on the "street_address" field.
func StreetAddressIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldStreetAddress))
}

// StreetAddressNotNil applies the NotNil predicate on the "street_address" field.
func StreetAddressNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldStreetAddress))
}

// StreetAddressEqualFold applies the EqualFold predicate on the "street_address" field.
func StreetAddressEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldStreetAddress, v))
}

// StreetAddressContainsFold applies the ContainsFold predicate on the "street_address" field.
func StreetAddressContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldStreetAddress, v))
}

// LocationCityEQ applies the EQ predicate on the "location_city" field.
func LocationCityEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLocationCity, v))
}

// LocationCityNEQ applies the NEQ predicate on the "location_city" field.
func LocationCityNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLocationCity, v))
}

// LocationCityIn applies the In predicate on the "location_city" field.
func LocationCityIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLocationCity, vs...))
}

// LocationCityNotIn applies the NotIn predicate on the "location_city" field.
func LocationCityNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLocationCity, vs...))
}

// LocationCityGT applies the GT predicate on the "location_city" field.
func LocationCityGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLocationCity, v))
}

// LocationCityGTE applies the GTE predicate on the "location_city" field.
func LocationCityGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLocationCity, v))
}

// LocationCityLT applies the LT predicate on the "location_city" field.
func LocationCityLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLocationCity, v))
}

// LocationCityLTE applies the LTE predicate on the "location_city" field.
func LocationCityLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLocationCity, v))
}

// LocationCityContains applies the Contains predicate on the "location_city" field.
func LocationCityContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldLocationCity, v))
}

// LocationCityHasPrefix applies the HasPrefix predicate on the "location_city" field.
func LocationCityHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldLocationCity, v))
}

// LocationCityHasSuffix applies the HasSuffix predicate on the "location_city" field.
func LocationCityHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldLocationCity, v))
}

// LocationCityIsNil applies the IsNil predicate on the "location_city" field.
func LocationCityIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldLocationCity))
}

// LocationCityNotNil applies the NotNil predicate on the "location_city" field.
func LocationCityNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldLocationCity))
}

// LocationCityEqualFold applies the EqualFold predicate on the "location_city" field.
func LocationCityEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldLocationCity, v))
}

// LocationCityContainsFold applies the ContainsFold predicate on the "location_city" field.
func LocationCityContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldLocationCity, v))
}

// LocationStateEQ applies the EQ predicate on the "location_state" field.
func LocationStateEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLocationState, v))
}

// LocationStateNEQ applies the NEQ predicate on the "location_state" field.
func LocationStateNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLocationState, v))
}

// LocationStateIn applies the In predicate on the "location_state" field.
func LocationStateIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLocationState, vs...))
}

// LocationStateNotIn applies the NotIn predicate on the "location_state" field.
func LocationStateNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLocationState, vs...))
}

// LocationStateGT applies the GT predicate on the "location_state" field.
func LocationStateGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLocationState, v))
}

// LocationStateGTE applies the GTE predicate on the "location_state" field.
func LocationStateGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLocationState, v))
}

// LocationStateLT applies the LT predicate on the "location_state" field.
func LocationStateLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLocationState, v))
}

// LocationStateLTE applies the LTE predicate on the "location_state" field.
func LocationStateLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLocationState, v))
}

// LocationStateContains applies the Contains predicate on the "location_state" field.
func LocationStateContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldLocationState, v))
}

// LocationStateHasPrefix applies the HasPrefix predicate on the "location_state" field.
func LocationStateHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldLocationState, v))
}

// LocationStateHasSuffix applies the HasSuffix predicate on the "location_state" field.
func LocationStateHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldLocationState, v))
}

// LocationStateIsNil applies the IsNil predicate on the "location_state" field.
func LocationStateIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldLocationState))
}

// LocationStateNotNil applies the NotNil predicate on the "location_state" field.
func LocationStateNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldLocationState))
}

// LocationStateEqualFold applies the EqualFold predicate on the "location_state" field.
func LocationStateEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldLocationState, v))
}

// LocationStateContainsFold applies the ContainsFold predicate on the "location_state" field.
func LocationStateContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldLocationState, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldPostalCode, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldRawText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasScans applies the HasEdge predicate on the "scans" edge.
func HasScans() predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScansTable, ScansColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScansWith applies the HasEdge predicate on the "scans" edge with a given conditions (other predicates).
func HasScansWith(preds ...predicate.ScanJob) predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := newScansStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.NotPredicates(p))
}
