package logistics

// Logistics はイベントに紐づく物品・手配を表す
type Logistics struct {
	ID          int64
	Description string
	Reserved    bool
	UnitPrice   float64
	Quantity    int
}

// NewLogistics は新しいロジスティクスを作成する
func NewLogistics(description string, reserved bool, unitPrice float64, quantity int) *Logistics {
	return &Logistics{
		Description: description,
		Reserved:    reserved,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
}

// LineTotal は単価×数量を返す
func (l *Logistics) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// IsPersisted はストアでIDが採番済みかを返す
func (l *Logistics) IsPersisted() bool {
	return l.ID != 0
}

// Validate はロジスティクスの検証を行う
func (l *Logistics) Validate() error {
	if l.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if l.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
