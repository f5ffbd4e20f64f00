package service

import (
	"fmt"
	"time"

	"parkledger/internal/apierrors"
	"parkledger/internal/db"
	"parkledger/internal/entities"
	"parkledger/internal/repository"
	"parkledger/internal/utils"
)

type MemberService struct {
	Repo *repository.LedgerRepository
}

func NewMemberService(repo *repository.LedgerRepository) *MemberService {
	return &MemberService{Repo: repo}
}

// Create registers a new member. Phone is the roster key and must be unique.
func (s *MemberService) Create(req entities.MemberRequest) (*db.Member, error) {
	if err := validateMemberFields(req); err != nil {
		return nil, err
	}

	member := db.Member{
		Phone:        req.Phone,
		Name:         req.Name,
		RegisteredAt: time.Now().UTC(),
		VisitCount:   0,
	}

	err := s.Repo.Update(func(ledger *db.Ledger) error {
		if ledger.FindMember(req.Phone) != nil {
			return apierrors.Conflict(fmt.Sprintf("phone %s is already registered", req.Phone))
		}
		ledger.Members = append(ledger.Members, member)
		return nil
	})
	if err != nil {
		return nil, asOperationError(err, "member registration")
	}
	return &member, nil
}

func (s *MemberService) Get(phone string) (*db.Member, error) {
	member := s.Repo.Load().FindMember(phone)
	if member == nil {
		return nil, apierrors.NotFound(fmt.Sprintf("no member registered with phone %s", phone))
	}
	return member, nil
}

func (s *MemberService) List() []db.Member {
	return s.Repo.Load().Members
}

// Update changes a member's name and/or phone, located by the prior phone
// value. A changed phone is re-checked for uniqueness against all other
// members before anything is applied.
func (s *MemberService) Update(phone string, req entities.MemberRequest) (*db.Member, error) {
	if err := validateMemberFields(req); err != nil {
		return nil, err
	}

	var updated db.Member
	err := s.Repo.Update(func(ledger *db.Ledger) error {
		member := ledger.FindMember(phone)
		if member == nil {
			return apierrors.NotFound(fmt.Sprintf("no member registered with phone %s", phone))
		}
		if req.Phone != phone && ledger.FindMember(req.Phone) != nil {
			return apierrors.Conflict(fmt.Sprintf("phone %s is already registered", req.Phone))
		}
		member.Name = req.Name
		member.Phone = req.Phone
		updated = *member
		return nil
	})
	if err != nil {
		return nil, asOperationError(err, "member update")
	}
	return &updated, nil
}

func (s *MemberService) Delete(phone string) error {
	err := s.Repo.Update(func(ledger *db.Ledger) error {
		if !ledger.RemoveMember(phone) {
			return apierrors.NotFound(fmt.Sprintf("no member registered with phone %s", phone))
		}
		return nil
	})
	if err != nil {
		return asOperationError(err, "member removal")
	}
	return nil
}

func validateMemberFields(req entities.MemberRequest) error {
	if req.Name == "" {
		return apierrors.Validation("member name is required")
	}
	if !utils.ValidPhone(req.Phone) {
		return apierrors.Validation("member phone must be 10 to 13 digits")
	}
	return nil
}
