package dto

import (
	"fmt"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=10"`
	Type       string `json:"type"        validate:"required,oneof=AC Non-AC"`
	Price      int64  `json:"price"       validate:"required,gt=0"`
	Floor      string `json:"floor"       validate:"required,max=10"`
}

// ToModel assigns the next identifier in the RM1xx series, so new rooms sort
// after the seeded inventory.
func (c *CreateRoomRequest) ToModel(seq int64, operator string) model.Room {
	return model.Room{
		ID:         fmt.Sprintf("RM%d", 100+seq),
		RoomNumber: c.RoomNumber,
		Type:       c.Type,
		Price:      c.Price,
		Status:     model.StatusAvailable,
		Floor:      c.Floor,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type UpdateRoomRequest struct {
	Type  string `json:"type"  validate:"omitempty,oneof=AC Non-AC"`
	Price int64  `json:"price" validate:"omitempty,gt=0"`
	Floor string `json:"floor" validate:"omitempty,max=10"`
}

// ApplyTo overwrites only the fields present in the request.
func (u *UpdateRoomRequest) ApplyTo(room *model.Room, operator string) {
	if u.Type != "" {
		room.Type = u.Type
	}

	if u.Price > 0 {
		room.Price = u.Price
	}

	if u.Floor != "" {
		room.Floor = u.Floor
	}

	room.ModifiedAt = timezone.Now()
	room.ModifiedBy = operator
}

type SetRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available booked maintenance"`
}

type RoomFilter struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

// Matches reports whether the room passes every populated filter field.
func (f RoomFilter) Matches(room model.Room) bool {
	if f.Status != "" && room.Status != f.Status {
		return false
	}

	if f.Type != "" && room.Type != f.Type {
		return false
	}

	return true
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Type       string `json:"type"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
	Floor      string `json:"floor"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Price = model.Price
	r.Status = model.Status
	r.Floor = model.Floor
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
