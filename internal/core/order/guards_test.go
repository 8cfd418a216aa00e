package order

import "testing"

func TestCanCreateOrder(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateOrderContext
		wantAllowed bool
		wantField   string
	}{
		{
			name:        "valid minimal order",
			ctx:         CreateOrderContext{Customer: "Store #241"},
			wantAllowed: true,
		},
		{
			name:        "empty customer rejected",
			ctx:         CreateOrderContext{Customer: ""},
			wantAllowed: false,
			wantField:   "customer",
		},
		{
			name:        "whitespace customer rejected",
			ctx:         CreateOrderContext{Customer: "   "},
			wantAllowed: false,
			wantField:   "customer",
		},
		{
			name:        "unknown priority rejected",
			ctx:         CreateOrderContext{Customer: "Route 12", Priority: Priority("urgent")},
			wantAllowed: false,
			wantField:   "priority",
		},
		{
			name:        "missing technician rejected",
			ctx:         CreateOrderContext{Customer: "Route 12", TechnicianID: "T-99", TechnicianExists: false},
			wantAllowed: false,
			wantField:   "technician",
		},
		{
			name:        "existing technician allowed",
			ctx:         CreateOrderContext{Customer: "Route 12", Priority: PriorityHigh, TechnicianID: "T-01", TechnicianExists: true},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateOrder(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanCreateOrder().Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Field != tt.wantField {
				t.Errorf("CanCreateOrder().Field = %q, want %q", result.Field, tt.wantField)
			}
			if tt.wantAllowed && result.Error() != nil {
				t.Errorf("CanCreateOrder().Error() = %v, want nil", result.Error())
			}
			if !tt.wantAllowed && result.Error() == nil {
				t.Error("CanCreateOrder().Error() = nil, want error")
			}
		})
	}
}
