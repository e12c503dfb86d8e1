package models

// ReceivingDerived is the field set a receiving copies from its consignment.
type ReceivingDerived struct {
	Supplier      *string
	ReceivedByID  *uint
	InvoiceNumber *string
	LocationID    *uint
}

// DeriveReceivingFields snapshots the consignment's current values. It is applied on every
// save of the receiving, so a later save re-reads whatever the consignment holds then.
func DeriveReceivingFields(c *Consignment) ReceivingDerived {
	return ReceivingDerived{
		Supplier:      stringPtr(c.Supplier),
		ReceivedByID:  uintPtr(c.ReceivedByID),
		InvoiceNumber: copyString(c.InvoiceNumber),
		LocationID:    uintPtr(c.LocationID),
	}
}

func (r *Receiving) ApplyDerived(d ReceivingDerived) {
	r.Supplier = d.Supplier
	r.ReceivedByID = d.ReceivedByID
	r.InvoiceNumber = d.InvoiceNumber
	r.LocationID = d.LocationID
}

// AssetDerived is the field set an asset copies from its receiving.
type AssetDerived struct {
	Description   *string
	SerialNumber  *string
	Name          *string
	Model         *string
	ReceivedByID  *uint
	LocationID    *uint
	InvoiceNumber *string
	Supplier      *string
}

func DeriveAssetFields(r *Receiving) AssetDerived {
	return AssetDerived{
		Description:   stringPtr(r.Description),
		SerialNumber:  stringPtr(r.SerialNumber),
		Name:          copyString(r.Name),
		Model:         copyString(r.Model),
		ReceivedByID:  copyUint(r.ReceivedByID),
		LocationID:    copyUint(r.LocationID),
		InvoiceNumber: copyString(r.InvoiceNumber),
		Supplier:      copyString(r.Supplier),
	}
}

func (a *Asset) ApplyDerived(d AssetDerived) {
	a.Description = d.Description
	a.SerialNumber = d.SerialNumber
	a.Name = d.Name
	a.Model = d.Model
	a.ReceivedByID = d.ReceivedByID
	a.LocationID = d.LocationID
	a.InvoiceNumber = d.InvoiceNumber
	a.Supplier = d.Supplier
}

// DeriveDispatchLocation keeps a caller-supplied location and otherwise falls back to the asset's.
func DeriveDispatchLocation(current *uint, a *Asset) *uint {
	if current != nil {
		return current
	}
	if a == nil {
		return nil
	}
	return copyUint(a.LocationID)
}

func stringPtr(s string) *string { return &s }

func uintPtr(v uint) *uint {
	if v == 0 {
		return nil
	}
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyUint(v *uint) *uint {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
