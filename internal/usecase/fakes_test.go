package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// In-memory repository fakes backing the service tests. Each fake keeps its
// rows in a map and mimics the not-found-is-nil convention of the real
// repositories.

func testRepository(t interface{ Helper() }) *repository.Repository {
	t.Helper()

	classBookings := &fakeClassBookingRepo{rows: map[uuid.UUID]*entity.ClassBooking{}}

	return &repository.Repository{
		User:             &fakeUserRepo{rows: map[uuid.UUID]*entity.User{}},
		Session:          &fakeSessionRepo{rows: map[string]*entity.Session{}},
		Facility:         &fakeFacilityRepo{rows: map[uuid.UUID]*entity.Facility{}},
		Class:            &fakeClassRepo{rows: map[uuid.UUID]*entity.Class{}, bookings: classBookings},
		TeamEvent:        &fakeTeamEventRepo{rows: map[uuid.UUID]*entity.TeamEvent{}},
		Plan:             &fakePlanRepo{rows: map[uuid.UUID]*entity.MembershipPlan{}},
		ActiveMembership: &fakeMembershipRepo{rows: map[uuid.UUID]*entity.ActiveMembership{}},
		ClassBooking:     classBookings,
		FacilityBooking:  &fakeFacilityBookingRepo{rows: map[uuid.UUID]*entity.FacilityBooking{}},
		Discount:         &fakeDiscountRepo{rows: map[int]*entity.DiscountScheme{}},
	}
}

// ---------------- users ----------------

type fakeUserRepo struct {
	rows map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, existing := range f.rows {
		if existing.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	copied := *user
	f.rows[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.rows {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.rows))
	for _, user := range f.rows {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return paginate(users, limit, offset), nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := f.rows[user.ID]; !ok {
		return errors.New("user not found")
	}
	copied := *user
	f.rows[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// ---------------- sessions ----------------

type fakeSessionRepo struct {
	rows map[string]*entity.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	copied := *session
	f.rows[session.Token] = &copied
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	session, ok := f.rows[token]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	delete(f.rows, token)
	return nil
}

func (f *fakeSessionRepo) DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	for token, session := range f.rows {
		if session.UserID == userID {
			delete(f.rows, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	for token, session := range f.rows {
		if session.ExpiresAt.Before(time.Now()) {
			delete(f.rows, token)
		}
	}
	return nil
}

// ---------------- facilities ----------------

type fakeFacilityRepo struct {
	rows map[uuid.UUID]*entity.Facility
}

func (f *fakeFacilityRepo) Create(ctx context.Context, facility *entity.Facility) error {
	copied := *facility
	f.rows[facility.ID] = &copied
	return nil
}

func (f *fakeFacilityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	facility, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *facility
	return &copied, nil
}

func (f *fakeFacilityRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Facility, error) {
	facilities := make([]*entity.Facility, 0, len(f.rows))
	for _, facility := range f.rows {
		copied := *facility
		facilities = append(facilities, &copied)
	}
	sort.Slice(facilities, func(i, j int) bool { return facilities[i].Name < facilities[j].Name })
	return paginate(facilities, limit, offset), nil
}

func (f *fakeFacilityRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeFacilityRepo) Update(ctx context.Context, facility *entity.Facility) error {
	if _, ok := f.rows[facility.ID]; !ok {
		return errors.New("facility not found")
	}
	copied := *facility
	f.rows[facility.ID] = &copied
	return nil
}

func (f *fakeFacilityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// ---------------- classes ----------------

type fakeClassRepo struct {
	rows     map[uuid.UUID]*entity.Class
	bookings *fakeClassBookingRepo
}

func (f *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	copied := *class
	f.rows[class.ID] = &copied
	return nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	class, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *class
	return &copied, nil
}

func (f *fakeClassRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Class, error) {
	return f.list(limit, offset, func(*entity.Class) bool { return true }), nil
}

func (f *fakeClassRepo) FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Class, error) {
	today := time.Now().Truncate(24 * time.Hour)
	return f.list(limit, offset, func(c *entity.Class) bool { return !c.ClassDate.Before(today) }), nil
}

func (f *fakeClassRepo) list(limit, offset int, keep func(*entity.Class) bool) []*entity.Class {
	classes := make([]*entity.Class, 0, len(f.rows))
	for _, class := range f.rows {
		if keep(class) {
			copied := *class
			classes = append(classes, &copied)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ClassDate.Before(classes[j].ClassDate) })
	return paginate(classes, limit, offset)
}

func (f *fakeClassRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeClassRepo) CountBookings(ctx context.Context, classID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range f.bookings.rows {
		if booking.ClassID == classID {
			count++
		}
	}
	return count, nil
}

func (f *fakeClassRepo) Update(ctx context.Context, class *entity.Class) error {
	if _, ok := f.rows[class.ID]; !ok {
		return errors.New("class not found")
	}
	copied := *class
	f.rows[class.ID] = &copied
	return nil
}

func (f *fakeClassRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// ---------------- team events ----------------

type fakeTeamEventRepo struct {
	rows map[uuid.UUID]*entity.TeamEvent
}

func (f *fakeTeamEventRepo) Create(ctx context.Context, event *entity.TeamEvent) error {
	copied := *event
	f.rows[event.ID] = &copied
	return nil
}

func (f *fakeTeamEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamEvent, error) {
	event, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (f *fakeTeamEventRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.TeamEvent, error) {
	events := make([]*entity.TeamEvent, 0, len(f.rows))
	for _, event := range f.rows {
		copied := *event
		events = append(events, &copied)
	}
	sort.Slice(events, func(i, j int) bool {
		di, _ := entity.WeekdayIndex(events[i].Day)
		dj, _ := entity.WeekdayIndex(events[j].Day)
		if di != dj {
			return di < dj
		}
		return events[i].StartMinutes < events[j].StartMinutes
	})
	return paginate(events, limit, offset), nil
}

func (f *fakeTeamEventRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeTeamEventRepo) Update(ctx context.Context, event *entity.TeamEvent) error {
	if _, ok := f.rows[event.ID]; !ok {
		return errors.New("team event not found")
	}
	copied := *event
	f.rows[event.ID] = &copied
	return nil
}

func (f *fakeTeamEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// ---------------- plans ----------------

type fakePlanRepo struct {
	rows map[uuid.UUID]*entity.MembershipPlan
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *entity.MembershipPlan) error {
	copied := *plan
	f.rows[plan.ID] = &copied
	return nil
}

func (f *fakePlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	plan, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *plan
	return &copied, nil
}

func (f *fakePlanRepo) FindAll(ctx context.Context) ([]*entity.MembershipPlan, error) {
	plans := make([]*entity.MembershipPlan, 0, len(f.rows))
	for _, plan := range f.rows {
		copied := *plan
		plans = append(plans, &copied)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].PricePence < plans[j].PricePence })
	return plans, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *entity.MembershipPlan) error {
	if _, ok := f.rows[plan.ID]; !ok {
		return errors.New("plan not found")
	}
	copied := *plan
	f.rows[plan.ID] = &copied
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

// ---------------- active memberships ----------------

type fakeMembershipRepo struct {
	rows map[uuid.UUID]*entity.ActiveMembership
}

func (f *fakeMembershipRepo) Create(ctx context.Context, membership *entity.ActiveMembership) error {
	for _, existing := range f.rows {
		if existing.UserID == membership.UserID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "active_memberships_user_id_key"}
		}
	}
	copied := *membership
	f.rows[membership.ID] = &copied
	return nil
}

func (f *fakeMembershipRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActiveMembership, error) {
	membership, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *membership
	return &copied, nil
}

func (f *fakeMembershipRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ActiveMembership, error) {
	for _, membership := range f.rows {
		if membership.UserID == userID {
			copied := *membership
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeMembershipRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	for id, membership := range f.rows {
		if membership.UserID == userID {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeMembershipRepo) CountByPlan(ctx context.Context) ([]*entity.PlanCount, error) {
	counts := map[uuid.UUID]int{}
	for _, membership := range f.rows {
		counts[membership.PlanID]++
	}
	result := make([]*entity.PlanCount, 0, len(counts))
	for planID, count := range counts {
		result = append(result, &entity.PlanCount{PlanID: planID, Members: count})
	}
	return result, nil
}

func (f *fakeMembershipRepo) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	for _, membership := range f.rows {
		if !membership.CreatedAt.Before(since) {
			total += membership.AmountPence
		}
	}
	return total, nil
}

// ---------------- class bookings ----------------

type fakeClassBookingRepo struct {
	rows map[uuid.UUID]*entity.ClassBooking
}

func (f *fakeClassBookingRepo) Create(ctx context.Context, booking *entity.ClassBooking) error {
	for _, existing := range f.rows {
		if existing.UserID == booking.UserID && existing.ClassID == booking.ClassID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "class_bookings_user_class_key"}
		}
	}
	copied := *booking
	f.rows[booking.ID] = &copied
	return nil
}

func (f *fakeClassBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassBooking, error) {
	booking, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeClassBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ClassBooking, error) {
	bookings := make([]*entity.ClassBooking, 0)
	for _, booking := range f.rows {
		if booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.Before(bookings[j].CreatedAt) })
	return bookings, nil
}

func (f *fakeClassBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range f.rows {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeClassBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeClassBookingRepo) SalesSince(ctx context.Context, since time.Time) ([]*entity.ClassSales, error) {
	byClass := map[uuid.UUID]*entity.ClassSales{}
	for _, booking := range f.rows {
		if booking.CreatedAt.Before(since) {
			continue
		}
		row, ok := byClass[booking.ClassID]
		if !ok {
			row = &entity.ClassSales{ClassID: booking.ClassID}
			byClass[booking.ClassID] = row
		}
		row.Bookings++
		row.RevenuePence += booking.AmountPence
	}
	sales := make([]*entity.ClassSales, 0, len(byClass))
	for _, row := range byClass {
		sales = append(sales, row)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].RevenuePence > sales[j].RevenuePence })
	return sales, nil
}

// ---------------- facility bookings ----------------

type fakeFacilityBookingRepo struct {
	rows map[uuid.UUID]*entity.FacilityBooking
}

func (f *fakeFacilityBookingRepo) Create(ctx context.Context, booking *entity.FacilityBooking) error {
	copied := *booking
	f.rows[booking.ID] = &copied
	return nil
}

func (f *fakeFacilityBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.FacilityBooking, error) {
	booking, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeFacilityBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FacilityBooking, error) {
	bookings := make([]*entity.FacilityBooking, 0)
	for _, booking := range f.rows {
		if booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.Before(bookings[j].CreatedAt) })
	return bookings, nil
}

func (f *fakeFacilityBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range f.rows {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFacilityBookingRepo) CountOverlapping(ctx context.Context, facilityID uuid.UUID, date time.Time, startMinutes, endMinutes int) (int64, error) {
	var count int64
	for _, booking := range f.rows {
		if booking.FacilityID != facilityID || !booking.BookingDate.Equal(date) {
			continue
		}
		if booking.StartMinutes < endMinutes && booking.EndMinutes > startMinutes {
			count++
		}
	}
	return count, nil
}

func (f *fakeFacilityBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeFacilityBookingRepo) UsageSince(ctx context.Context, since time.Time) ([]*entity.FacilityUsage, error) {
	type usageKey struct {
		facilityID uuid.UUID
		activity   string
	}
	byActivity := map[usageKey]*entity.FacilityUsage{}
	for _, booking := range f.rows {
		if booking.CreatedAt.Before(since) {
			continue
		}
		key := usageKey{booking.FacilityID, booking.Activity}
		row, ok := byActivity[key]
		if !ok {
			row = &entity.FacilityUsage{FacilityID: booking.FacilityID, Activity: booking.Activity}
			byActivity[key] = row
		}
		row.Bookings++
		row.RevenuePence += booking.AmountPence
	}
	usage := make([]*entity.FacilityUsage, 0, len(byActivity))
	for _, row := range byActivity {
		usage = append(usage, row)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Activity < usage[j].Activity })
	return usage, nil
}

func (f *fakeFacilityBookingRepo) TotalRevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	for _, booking := range f.rows {
		if !booking.CreatedAt.Before(since) {
			total += booking.AmountPence
		}
	}
	return total, nil
}

// ---------------- discount schemes ----------------

type fakeDiscountRepo struct {
	rows   map[int]*entity.DiscountScheme
	nextID int
}

func (f *fakeDiscountRepo) Create(ctx context.Context, scheme *entity.DiscountScheme) error {
	f.nextID++
	scheme.ID = f.nextID
	scheme.CreatedAt = time.Now()
	copied := *scheme
	f.rows[scheme.ID] = &copied
	return nil
}

func (f *fakeDiscountRepo) FindByID(ctx context.Context, id int) (*entity.DiscountScheme, error) {
	scheme, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *scheme
	return &copied, nil
}

func (f *fakeDiscountRepo) FindAll(ctx context.Context) ([]*entity.DiscountScheme, error) {
	return f.sorted(func(*entity.DiscountScheme) bool { return true }), nil
}

func (f *fakeDiscountRepo) FindQualifying(ctx context.Context, bookingCount int64) ([]*entity.DiscountScheme, error) {
	return f.sorted(func(s *entity.DiscountScheme) bool { return int64(s.Threshold) <= bookingCount }), nil
}

func (f *fakeDiscountRepo) sorted(keep func(*entity.DiscountScheme) bool) []*entity.DiscountScheme {
	schemes := make([]*entity.DiscountScheme, 0, len(f.rows))
	for _, scheme := range f.rows {
		if keep(scheme) {
			copied := *scheme
			schemes = append(schemes, &copied)
		}
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i].ID < schemes[j].ID })
	return schemes
}

func (f *fakeDiscountRepo) Update(ctx context.Context, scheme *entity.DiscountScheme) error {
	if _, ok := f.rows[scheme.ID]; !ok {
		return errors.New("scheme not found")
	}
	copied := *scheme
	f.rows[scheme.ID] = &copied
	return nil
}

func (f *fakeDiscountRepo) Delete(ctx context.Context, id int) error {
	delete(f.rows, id)
	return nil
}

// ---------------- payment gateway ----------------

type fakeGateway struct {
	customers   map[string]string
	declineNext bool
	rejectCards bool
	charges     []fakeCharge
}

type fakeCharge struct {
	customerID string
	cardID     string
	amount     int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{customers: map[string]string{}}
}

func (g *fakeGateway) CreateCustomer(ctx context.Context, email, description, cardToken string) (string, string, error) {
	if g.rejectCards {
		return "", "", fmt.Errorf("card rejected")
	}
	customerID := "cust_" + uuid.NewString()[:8]
	cardID := "card_" + uuid.NewString()[:8]
	g.customers[customerID] = cardID
	return customerID, cardID, nil
}

func (g *fakeGateway) RetrieveCustomer(ctx context.Context, customerID string) (string, error) {
	cardID, ok := g.customers[customerID]
	if !ok {
		return "", fmt.Errorf("no such customer")
	}
	return cardID, nil
}

func (g *fakeGateway) CreateCharge(ctx context.Context, customerID, cardID string, amount int64, currency, description string) (string, error) {
	if g.declineNext {
		g.declineNext = false
		return "", fmt.Errorf("insufficient funds")
	}
	g.charges = append(g.charges, fakeCharge{customerID: customerID, cardID: cardID, amount: amount})
	return "chrg_" + uuid.NewString()[:8], nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
