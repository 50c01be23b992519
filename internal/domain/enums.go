package domain

// Role describes what a user is allowed to do within their company.
// There is no role hierarchy: access checks branch once on this value.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// ItemStatus represents the stock state of an inventory item.
type ItemStatus string

const (
	ItemStatusActive       ItemStatus = "active"
	ItemStatusLow          ItemStatus = "low"
	ItemStatusOrdered      ItemStatus = "ordered"
	ItemStatusDiscontinued ItemStatus = "discontinued"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusActive, ItemStatusLow, ItemStatusOrdered, ItemStatusDiscontinued:
		return true
	}
	return false
}

// ActivityAction identifies the kind of inventory mutation an activity log
// entry records.
type ActivityAction string

const (
	ActivityAdded       ActivityAction = "added"
	ActivityUpdated     ActivityAction = "updated"
	ActivityRemoved     ActivityAction = "removed"
	ActivityTransferred ActivityAction = "transferred"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityAdded, ActivityUpdated, ActivityRemoved, ActivityTransferred:
		return true
	}
	return false
}

// FieldType is the value type of a custom field definition.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeSelect FieldType = "select"
)

func (t FieldType) String() string { return string(t) }

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeSelect:
		return true
	}
	return false
}

// SubscriptionTier is the company's billing plan.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

func (t SubscriptionTier) String() string { return string(t) }

func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierPro:
		return true
	}
	return false
}
