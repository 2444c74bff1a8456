package helper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"frontdesk/config"
	authDto "frontdesk/internal/domains/auth/model/dto"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	communicationDto "frontdesk/internal/domains/communication/model/dto"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	maintenanceDto "frontdesk/internal/domains/maintenance/model/dto"
	roomDto "frontdesk/internal/domains/room/model/dto"
	settingDto "frontdesk/internal/domains/setting/model/dto"
	staffDto "frontdesk/internal/domains/staff/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// SeedDemo fills a running instance with a small demo property through the
// public API: eight rooms on two floors, a handful of guests and staff, a
// couple of bookings around today, one open maintenance request, the default
// settings and an admin account. The store lives in process memory, so this
// only makes sense against a server that is already up.
func SeedDemo(cfg *config.Config) error {
	if cfg.App.BaseURL == "" {
		return fmt.Errorf("APP_BASE_URL must point at a running instance")
	}

	s := &seeder{
		baseURL: cfg.App.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	roomIDs, err := s.seedRooms()
	if err != nil {
		return err
	}

	guestIDs, err := s.seedGuests()
	if err != nil {
		return err
	}

	staffIDs, err := s.seedStaff()
	if err != nil {
		return err
	}

	if err := s.seedBookings(roomIDs, guestIDs); err != nil {
		return err
	}

	if err := s.seedMaintenance(roomIDs, staffIDs); err != nil {
		return err
	}

	if err := s.seedCommunications(guestIDs); err != nil {
		return err
	}

	if err := s.seedSettings(); err != nil {
		return err
	}

	if err := s.seedUsers(); err != nil {
		return err
	}

	log.Info().Str("base_url", s.baseURL).Msg("Demo data seeded successfully")

	return nil
}

type seeder struct {
	baseURL string
	client  *http.Client
}

type envelope[T any] struct {
	Data T `json:"data"`
}

func (s *seeder) post(path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding %s payload: %w", path, err)
	}

	res, err := s.client.Post(s.baseURL+path, constant.ContentTypeJSON, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error calling %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s returned status %d", path, res.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", path, err)
	}

	return nil
}

func (s *seeder) put(path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding %s payload: %w", path, err)
	}

	req, err := http.NewRequest(http.MethodPut, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error building %s request: %w", path, err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s returned status %d", path, res.StatusCode)
	}

	return nil
}

func (s *seeder) seedRooms() (map[string]string, error) {
	rooms := []roomDto.CreateRoomRequest{
		{Number: "101", Type: "standard", Floor: 1, MaxOccupancy: 2, BasePrice: decimal.NewFromInt(85), Amenities: []string{"wifi", "tv"}},
		{Number: "102", Type: "standard", Floor: 1, MaxOccupancy: 2, BasePrice: decimal.NewFromInt(85), Amenities: []string{"wifi", "tv"}},
		{Number: "103", Type: "double", Floor: 1, MaxOccupancy: 3, BasePrice: decimal.NewFromInt(110), Amenities: []string{"wifi", "tv", "minibar"}},
		{Number: "104", Type: "double", Floor: 1, MaxOccupancy: 3, BasePrice: decimal.NewFromInt(110), Amenities: []string{"wifi", "tv", "minibar"}},
		{Number: "201", Type: "deluxe", Floor: 2, MaxOccupancy: 3, BasePrice: decimal.NewFromInt(150), Amenities: []string{"wifi", "tv", "minibar", "balcony"}},
		{Number: "202", Type: "deluxe", Floor: 2, MaxOccupancy: 3, BasePrice: decimal.NewFromInt(150), Amenities: []string{"wifi", "tv", "minibar", "balcony"}},
		{Number: "203", Type: "suite", Floor: 2, MaxOccupancy: 4, BasePrice: decimal.NewFromInt(240), Amenities: []string{"wifi", "tv", "minibar", "balcony", "kitchenette"}},
		{Number: "204", Type: "suite", Floor: 2, MaxOccupancy: 4, BasePrice: decimal.NewFromInt(240), Amenities: []string{"wifi", "tv", "minibar", "balcony", "kitchenette"}},
	}

	ids := make(map[string]string, len(rooms))

	for _, room := range rooms {
		var res envelope[roomDto.RoomResponse]
		if err := s.post("/v1/rooms", room, &res); err != nil {
			return nil, err
		}

		ids[room.Number] = res.Data.ID
	}

	log.Info().Int("count", len(ids)).Msg("Seeded rooms")

	return ids, nil
}

func (s *seeder) seedGuests() ([]string, error) {
	guests := []guestDto.CreateGuestRequest{
		{FirstName: "Maria", LastName: "Santos", Email: "maria.santos@example.com", Phone: "+62811220101", Nationality: "ID"},
		{FirstName: "James", LastName: "Wong", Email: "james.wong@example.com", Phone: "+6598761234", Nationality: "SG", Preferences: map[string]any{"floor": "high", "bed": "king"}},
		{FirstName: "Aiko", LastName: "Tanaka", Email: "aiko.tanaka@example.com", Phone: "+818012345678", Nationality: "JP"},
		{FirstName: "Lukas", LastName: "Meyer", Email: "lukas.meyer@example.com", Phone: "+4915123456789", Nationality: "DE"},
	}

	ids := make([]string, 0, len(guests))

	for _, guest := range guests {
		var res envelope[guestDto.GuestResponse]
		if err := s.post("/v1/guests", guest, &res); err != nil {
			return nil, err
		}

		ids = append(ids, res.Data.ID)
	}

	log.Info().Int("count", len(ids)).Msg("Seeded guests")

	return ids, nil
}

func (s *seeder) seedStaff() ([]string, error) {
	today := timezone.Format(timezone.Now(), constant.DateOnlyFormat)

	staff := []staffDto.CreateStaffRequest{
		{EmployeeID: "EMP-001", FirstName: "Dewi", LastName: "Lestari", Email: "dewi@frontdesk.example", Department: "front_office", Position: "receptionist", Shift: "morning", StartDate: "2023-04-01"},
		{EmployeeID: "EMP-002", FirstName: "Budi", LastName: "Hartono", Email: "budi@frontdesk.example", Department: "housekeeping", Position: "supervisor", Shift: "morning", StartDate: "2022-11-15"},
		{EmployeeID: "EMP-003", FirstName: "Sari", LastName: "Putri", Email: "sari@frontdesk.example", Department: "maintenance", Position: "technician", Shift: "afternoon", StartDate: today},
	}

	ids := make([]string, 0, len(staff))

	for _, member := range staff {
		var res envelope[staffDto.StaffResponse]
		if err := s.post("/v1/staff", member, &res); err != nil {
			return nil, err
		}

		ids = append(ids, res.Data.ID)
	}

	log.Info().Int("count", len(ids)).Msg("Seeded staff")

	return ids, nil
}

func (s *seeder) seedBookings(roomIDs map[string]string, guestIDs []string) error {
	now := timezone.Now()
	todayAtThree := timezone.StartOfDay(now).Add(15 * time.Hour)

	bookings := []bookingDto.CreateBookingRequest{
		{
			RoomID:      roomIDs["103"],
			GuestID:     guestIDs[0],
			CheckIn:     todayAtThree.Format(constant.DateFormat),
			CheckOut:    todayAtThree.AddDate(0, 0, 2).Add(-4 * time.Hour).Format(constant.DateFormat),
			Adults:      2,
			TotalAmount: decimal.NewFromInt(220),
			Channel:     "direct",
		},
		{
			RoomID:          roomIDs["203"],
			GuestID:         guestIDs[1],
			CheckIn:         todayAtThree.AddDate(0, 0, 7).Format(constant.DateFormat),
			CheckOut:        todayAtThree.AddDate(0, 0, 10).Format(constant.DateFormat),
			Adults:          2,
			Children:        1,
			TotalAmount:     decimal.NewFromInt(720),
			Channel:         "ota",
			SpecialRequests: "High floor, late arrival",
		},
	}

	for _, booking := range bookings {
		if err := s.post("/v1/bookings", booking, nil); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(bookings)).Msg("Seeded bookings")

	return nil
}

func (s *seeder) seedMaintenance(roomIDs map[string]string, staffIDs []string) error {
	request := maintenanceDto.CreateMaintenanceRequest{
		RoomID:      roomIDs["202"],
		StaffID:     staffIDs[2],
		Type:        "repair",
		Priority:    "high",
		Description: "Air conditioning unit not cooling",
	}

	if err := s.post("/v1/maintenance-requests", request, nil); err != nil {
		return err
	}

	log.Info().Msg("Seeded maintenance request")

	return nil
}

func (s *seeder) seedCommunications(guestIDs []string) error {
	message := communicationDto.CreateCommunicationRequest{
		GuestID:   guestIDs[0],
		Type:      "email",
		Subject:   "Late check-out request",
		Message:   "Would it be possible to check out at 2pm?",
		Direction: "inbound",
	}

	if err := s.post("/v1/communications", message, nil); err != nil {
		return err
	}

	log.Info().Msg("Seeded communication")

	return nil
}

func (s *seeder) seedSettings() error {
	settings := map[string]any{
		"property.profile": map[string]any{
			"name":      "Frontdesk Demo Hotel",
			"address":   "Jl. Pantai Indah 12, Denpasar",
			"timezone":  "Asia/Makassar",
			"check_in":  "15:00",
			"check_out": "11:00",
		},
		"booking.policy": map[string]any{
			"cancellation_hours": 48,
			"deposit_percent":    20,
		},
	}

	for key, value := range settings {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("error encoding setting %s: %w", key, err)
		}

		if err := s.put("/v1/settings/"+key, settingDto.UpsertSettingRequest{Value: raw}); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(settings)).Msg("Seeded settings")

	return nil
}

func (s *seeder) seedUsers() error {
	fullName := "Demo Admin"

	admin := authDto.RegisterRequest{
		Email:    "admin@frontdesk.example",
		Password: "frontdesk-demo",
		FullName: &fullName,
	}

	if err := s.post("/v1/auth/register", admin, nil); err != nil {
		return err
	}

	log.Info().Msg("Seeded admin account")

	return nil
}
