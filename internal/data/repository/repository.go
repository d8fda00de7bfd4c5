package repository

import (
	"vertex-leisure/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	Session          SessionRepository
	Facility         FacilityRepository
	Class            ClassRepository
	TeamEvent        TeamEventRepository
	Plan             PlanRepository
	ActiveMembership ActiveMembershipRepository
	ClassBooking     ClassBookingRepository
	FacilityBooking  FacilityBookingRepository
	Discount         DiscountRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Facility:         NewFacilityRepository(db, log),
		Class:            NewClassRepository(db, log),
		TeamEvent:        NewTeamEventRepository(db, log),
		Plan:             NewPlanRepository(db, log),
		ActiveMembership: NewActiveMembershipRepository(db, log),
		ClassBooking:     NewClassBookingRepository(db, log),
		FacilityBooking:  NewFacilityBookingRepository(db, log),
		Discount:         NewDiscountRepository(db, log),
	}
}
