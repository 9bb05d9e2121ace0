package helper

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	customerModel "frontdesk/internal/domains/customer/model"
	customerRepo "frontdesk/internal/domains/customer/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"frontdesk/shared/store"
	"frontdesk/shared/timezone"
)

const (
	seedRoomCount     = 20
	seedRoomsPerFloor = 5

	seedPriceAC    = 2000
	seedPriceNonAC = 1200
)

var seedCustomers = []customerModel.Customer{
	{Name: "Rahul Sharma", Email: "rahul.sharma@example.com", Phone: "9876543210", Address: "12 MG Road, Bengaluru", IDType: "aadhar", IDNumber: "4521-8834-9917"},
	{Name: "Priya Patel", Email: "priya.patel@example.com", Phone: "9823114567", Address: "88 Marine Drive, Mumbai", IDType: "pan", IDNumber: "BQHPP2841L"},
	{Name: "Arjun Mehta", Email: "arjun.mehta@example.com", Phone: "9911224455", Address: "5 Park Street, Kolkata", IDType: "passport", IDNumber: "M8236671"},
	{Name: "Sneha Reddy", Email: "sneha.reddy@example.com", Phone: "9700112233", Address: "23 Jubilee Hills, Hyderabad", IDType: "aadhar", IDNumber: "7742-1190-3356"},
	{Name: "Vikram Singh", Email: "vikram.singh@example.com", Phone: "9810445566", Address: "9 Connaught Place, Delhi", IDType: "driving_license", IDNumber: "DL-0420110149646"},
}

// Seeder populates empty collections with a starter inventory so a fresh
// deployment is usable immediately. Non-empty collections are left untouched.
type Seeder struct {
	cfg       *config.Config
	store     store.Store
	rooms     roomRepo.Room
	customers customerRepo.Customer
}

func NewSeeder(cfg *config.Config, st store.Store, rooms roomRepo.Room, customers customerRepo.Customer) *Seeder {
	return &Seeder{
		cfg:       cfg,
		store:     st,
		rooms:     rooms,
		customers: customers,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.App.Seed {
		return nil
	}

	if err := s.seedRooms(ctx); err != nil {
		return fmt.Errorf("seeding rooms: %w", err)
	}

	if err := s.seedCustomers(ctx); err != nil {
		return fmt.Errorf("seeding customers: %w", err)
	}

	return nil
}

func (s *Seeder) seedRooms(ctx context.Context) error {
	count, err := s.rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting rooms: %w", err)
	}

	if count > 0 {
		return nil
	}

	now := timezone.Now()
	rooms := make([]roomModel.Room, 0, seedRoomCount)

	for i := 1; i <= seedRoomCount; i++ {
		seq, err := s.store.NextSeq(ctx, roomModel.SequenceName)
		if err != nil {
			return fmt.Errorf("advancing room sequence: %w", err)
		}

		floor := (i + seedRoomsPerFloor - 1) / seedRoomsPerFloor

		position := i % seedRoomsPerFloor
		if position == 0 {
			position = seedRoomsPerFloor
		}

		roomType := roomModel.TypeAC
		price := int64(seedPriceAC)

		if i%3 == 0 {
			roomType = roomModel.TypeNonAC
			price = seedPriceNonAC
		}

		rooms = append(rooms, roomModel.Room{
			ID:         fmt.Sprintf("RM%d", 100+seq),
			RoomNumber: fmt.Sprintf("%d0%d", floor, position),
			Type:       roomType,
			Price:      price,
			Status:     roomModel.StatusAvailable,
			Floor:      fmt.Sprintf("%d", floor),
			Metadata: model.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  constant.DefaultOperator,
				ModifiedBy: constant.DefaultOperator,
			},
		})
	}

	if err := s.rooms.ReplaceAll(ctx, rooms); err != nil {
		return fmt.Errorf("writing seed rooms: %w", err)
	}

	log.Info().Int("count", len(rooms)).Msg("Seeded room inventory")

	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	count, err := s.customers.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting customers: %w", err)
	}

	if count > 0 {
		return nil
	}

	now := timezone.Now()
	customers := make([]customerModel.Customer, 0, len(seedCustomers))

	for _, customer := range seedCustomers {
		seq, err := s.store.NextSeq(ctx, customerModel.SequenceName)
		if err != nil {
			return fmt.Errorf("advancing customer sequence: %w", err)
		}

		customer.ID = fmt.Sprintf("CUST%03d", seq)
		customer.Metadata = model.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.DefaultOperator,
			ModifiedBy: constant.DefaultOperator,
		}

		customers = append(customers, customer)
	}

	if err := s.customers.ReplaceAll(ctx, customers); err != nil {
		return fmt.Errorf("writing seed customers: %w", err)
	}

	log.Info().Int("count", len(customers)).Msg("Seeded customer directory")

	return nil
}
