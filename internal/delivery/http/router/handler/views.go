package handler

import (
	"time"

	"bmshub/internal/domain/entity"
)

// View types keep the wire format stable regardless of how the entities
// evolve. Field names follow the stored document shape.

// AgreementView is the wire shape of an agreement.
type AgreementView struct {
	ID          string    `json:"_id"`
	UserEmail   string    `json:"userEmail"`
	UserName    string    `json:"userName"`
	ApartmentNo string    `json:"apartmentNo"`
	Floor       string    `json:"floor"`
	Block       string    `json:"block"`
	Rent        int64     `json:"rent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newAgreementView(a *entity.Agreement) *AgreementView {
	return &AgreementView{
		ID:          a.ID,
		UserEmail:   a.UserEmail,
		UserName:    a.UserName,
		ApartmentNo: a.ApartmentNo,
		Floor:       a.Floor,
		Block:       a.Block,
		Rent:        a.Rent,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func newAgreementViews(agreements []*entity.Agreement) []*AgreementView {
	views := make([]*AgreementView, 0, len(agreements))
	for _, a := range agreements {
		views = append(views, newAgreementView(a))
	}

	return views
}

// RentedApartmentView is the wire shape of a member's rented unit.
type RentedApartmentView struct {
	Floor  *string `json:"floor"`
	Block  *string `json:"block"`
	RoomNo *string `json:"roomNo"`
}

// UserView is the wire shape of a user account.
type UserView struct {
	ID                  string              `json:"_id"`
	Email               string              `json:"email"`
	Name                string              `json:"name"`
	PhotoURL            string              `json:"photoURL"`
	Role                string              `json:"role"`
	CreatedAt           time.Time           `json:"createdAt"`
	LastLogin           time.Time           `json:"lastLogin"`
	AgreementAcceptDate *time.Time          `json:"agreementAcceptDate,omitempty"`
	RentedApartment     RentedApartmentView `json:"rentedApartment"`
}

func newUserView(u *entity.User) *UserView {
	return &UserView{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		PhotoURL:            u.PhotoURL,
		Role:                string(u.Role),
		CreatedAt:           u.CreatedAt,
		LastLogin:           u.LastLogin,
		AgreementAcceptDate: u.AgreementAcceptDate,
		RentedApartment: RentedApartmentView{
			Floor:  u.RentedApartment.Floor,
			Block:  u.RentedApartment.Block,
			RoomNo: u.RentedApartment.RoomNo,
		},
	}
}

func newUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

// MemberView is the wire shape of a membership application.
type MemberView struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func newMemberViews(members []*entity.Member) []*MemberView {
	views := make([]*MemberView, 0, len(members))
	for _, m := range members {
		views = append(views, &MemberView{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Status:    string(m.Status),
			CreatedAt: m.CreatedAt,
		})
	}

	return views
}

// PaymentView is the wire shape of a recorded payment.
type PaymentView struct {
	ID            string    `json:"_id"`
	AgreementID   string    `json:"agreementId"`
	UserEmail     string    `json:"userEmail"`
	Amount        int64     `json:"amount"`
	Month         string    `json:"month"`
	TransactionID string    `json:"transactionId"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          time.Time `json:"date"`
}

func newPaymentViews(payments []*entity.Payment) []*PaymentView {
	views := make([]*PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, &PaymentView{
			ID:            p.ID,
			AgreementID:   p.AgreementID,
			UserEmail:     p.UserEmail,
			Amount:        p.Amount,
			Month:         p.Month,
			TransactionID: p.TransactionID,
			PaymentMethod: p.PaymentMethod,
			Date:          p.Date,
		})
	}

	return views
}

// ApartmentView is the wire shape of an apartment unit.
type ApartmentView struct {
	ID          string `json:"_id"`
	ApartmentNo string `json:"apartmentNo"`
	Floor       string `json:"floor"`
	Block       string `json:"block"`
	Rent        int64  `json:"rent"`
	Status      string `json:"status"`
}

func newApartmentViews(apartments []*entity.Apartment) []*ApartmentView {
	views := make([]*ApartmentView, 0, len(apartments))
	for _, a := range apartments {
		views = append(views, &ApartmentView{
			ID:          a.ID,
			ApartmentNo: a.ApartmentNo,
			Floor:       a.Floor,
			Block:       a.Block,
			Rent:        a.Rent,
			Status:      string(a.Status),
		})
	}

	return views
}

// CouponView is the wire shape of a coupon.
type CouponView struct {
	ID          string    `json:"_id"`
	Code        string    `json:"code"`
	Discount    int64     `json:"discount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newCouponViews(coupons []*entity.Coupon) []*CouponView {
	views := make([]*CouponView, 0, len(coupons))
	for _, cp := range coupons {
		views = append(views, &CouponView{
			ID:          cp.ID,
			Code:        cp.Code,
			Discount:    cp.Discount,
			Description: cp.Description,
			CreatedAt:   cp.CreatedAt,
		})
	}

	return views
}

// AnnouncementView is the wire shape of an announcement.
type AnnouncementView struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func newAnnouncementViews(announcements []*entity.Announcement) []*AnnouncementView {
	views := make([]*AnnouncementView, 0, len(announcements))
	for _, a := range announcements {
		views = append(views, &AnnouncementView{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Date:        a.Date,
		})
	}

	return views
}
