package dto

import (
	"time"

	"agendo/internal/domains/appointment/model"
	"agendo/shared"
	"agendo/shared/constant"
	gDto "agendo/shared/dto"
	"agendo/shared/timezone"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID     string `json:"service_id"      validate:"required"`
	ServiceTypeID string `json:"service_type_id" validate:"omitempty"`
	StaffID       string `json:"staff_id"        validate:"omitempty"`
	CustomerID    string `json:"-"`
	StartsAt      string `json:"starts_at"       validate:"required"`
}

// StartInstant parses the requested start as RFC3339.
func (c *CreateAppointmentRequest) StartInstant() (time.Time, error) {
	return time.Parse(time.RFC3339, c.StartsAt)
}

// ToModel builds the pending appointment with the resolved pricing snapshot.
func (c *CreateAppointmentRequest) ToModel(branchID, staffID string, startsAt, endsAt time.Time, totalCents, depositCents int64, bufferMinutes int, user string) model.Appointment {
	appointment := model.Appointment{
		ID:            uuid.NewString(),
		BranchID:      branchID,
		CustomerID:    c.CustomerID,
		StaffID:       staffID,
		ServiceID:     c.ServiceID,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Status:        model.StatusPending,
		TotalCents:    totalCents,
		DepositCents:  depositCents,
		BufferMinutes: bufferMinutes,
	}

	appointment.CreatedAt = timezone.Now()
	appointment.ModifiedAt = timezone.Now()
	appointment.CreatedBy = user
	appointment.ModifiedBy = user

	return appointment
}

type AppointmentResponse struct {
	ID            string `json:"id"`
	BranchID      string `json:"branch_id"`
	CustomerID    string `json:"customer_id"`
	StaffID       string `json:"staff_id"`
	ServiceID     string `json:"service_id"`
	StartsAt      string `json:"starts_at"`
	EndsAt        string `json:"ends_at"`
	Status        string `json:"status"`
	TotalCents    int64  `json:"total_cents"`
	DepositCents  int64  `json:"deposit_cents"`
	BufferMinutes int    `json:"buffer_minutes"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(mod model.Appointment) {
	r.ID = mod.ID
	r.BranchID = mod.BranchID
	r.CustomerID = mod.CustomerID
	r.StaffID = mod.StaffID
	r.ServiceID = mod.ServiceID
	r.StartsAt = mod.StartsAt.UTC().Format(constant.DateFormat)
	r.EndsAt = mod.EndsAt.UTC().Format(constant.DateFormat)
	r.Status = mod.Status
	r.TotalCents = mod.TotalCents
	r.DepositCents = mod.DepositCents
	r.BufferMinutes = mod.BufferMinutes
	r.Metadata.FromModel(mod.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type AvailabilityRequest struct {
	ServiceID     string `json:"service_id"      validate:"required"`
	ServiceTypeID string `json:"service_type_id" validate:"omitempty"`
	StaffID       string `json:"staff_id"        validate:"omitempty"`
	Date          string `json:"date"            validate:"required"`
}

type AvailabilityResponse struct {
	StaffID string   `json:"staff_id"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}

func (r *AvailabilityResponse) FromSlots(staffID, date string, slots []time.Time) {
	r.StaffID = staffID
	r.Date = date
	r.Slots = make([]string, len(slots))

	for i, slot := range slots {
		r.Slots[i] = slot.UTC().Format(constant.DateFormat)
	}
}

type RescheduleRequest struct {
	StartsAt string `json:"starts_at" validate:"required"`
}

func (c *RescheduleRequest) StartInstant() (time.Time, error) {
	return time.Parse(time.RFC3339, c.StartsAt)
}

type RescheduleResponse struct {
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

type CancelResponse struct {
	RefundedCents int64 `json:"refunded_cents"`
}

type SweepResult struct {
	CompletedCount int64 `json:"completed_count"`
	CanceledCount  int64 `json:"canceled_count"`
}

type CalendarRequest struct {
	BranchID string `json:"branch_id" validate:"required"`
	StaffID  string `json:"staff_id"  validate:"omitempty"`
}
