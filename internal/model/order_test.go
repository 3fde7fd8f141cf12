package model

import "testing"

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{"pending", "pending", OrderStatusPending, false},
		{"completed", "completed", OrderStatusCompleted, false},
		{"unknown", "shipped", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Pending", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending skips to completed", OrderStatusPending, OrderStatusCompleted, false},
		{"confirmed to ready", OrderStatusConfirmed, OrderStatusReady, true},
		{"ready to completed", OrderStatusReady, OrderStatusCompleted, true},
		{"completed is terminal", OrderStatusCompleted, OrderStatusPending, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusConfirmed, false},
		{"no backwards move", OrderStatusReady, OrderStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Fatalf("CanTransition(%s, %s)=%v want=%v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
