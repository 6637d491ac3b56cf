package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

func TestNewBookingDTO_FormatsCalendarDate(t *testing.T) {
	b := models.Booking{
		ID:          3,
		BookingDate: datatypes.Date(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)),
		BookingTime: "09:00",
		Status:      "pending",
		Service: models.Service{
			Name:     "Spa",
			Provider: models.Provider{Name: "Grand"},
		},
	}

	got := NewBookingDTO(b)
	if got.Date != "2099-01-01" || got.ServiceName != "Spa" || got.ProviderName != "Grand" {
		t.Errorf("Unexpected dto %+v", got)
	}

	raw, _ := json.Marshal(got)
	if !strings.Contains(string(raw), `"booking_date":"2099-01-01"`) {
		t.Errorf("Expected plain date in JSON, got %s", raw)
	}
}

func TestNewServiceList_ProvidedBy(t *testing.T) {
	list := NewServiceList([]models.Service{{
		Name:         "Tour",
		ProviderKind: role.Vendor,
		DurationMin:  90,
		Provider:     models.Provider{Name: "City Tours"},
	}})

	if len(list) != 1 || list[0].ProviderName != "City Tours" || list[0].ProviderType != "vendor" || list[0].Duration != 90 {
		t.Errorf("Unexpected list %+v", list)
	}
	if empty := NewServiceList(nil); empty == nil || len(empty) != 0 {
		t.Error("Expected an empty non-nil list")
	}
}
