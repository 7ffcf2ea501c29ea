package rbac

import (
	"github.com/casbin/casbin/v2"

	"github.com/IdrisKulubi/huaweievent/internal/domain"
)

const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobSeeker = "job_seeker"
	RoleSecurity  = "security"
)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

// rolePolicies is the static capability matrix for the four portals.
// Policies are seeded at startup; role assignment itself lives on the user row.
var rolePolicies = [][3]string{
	{RoleAdmin, "user", "read"},
	{RoleAdmin, "user", "manage"},
	{RoleAdmin, "event", "read"},
	{RoleAdmin, "event", "manage"},
	{RoleAdmin, "attendee", "read"},
	{RoleAdmin, "attendee", "manage"},
	{RoleAdmin, "report", "read"},
	{RoleAdmin, "checkin", "read"},
	{RoleAdmin, "incident", "read"},
	{RoleAdmin, "incident", "manage"},
	{RoleAdmin, "booth", "read"},
	{RoleAdmin, "employer", "read"},
	{RoleAdmin, "employer", "verify"},

	{RoleEmployer, "booth", "read"},
	{RoleEmployer, "booth", "manage"},
	{RoleEmployer, "interview", "read"},
	{RoleEmployer, "interview", "manage"},
	{RoleEmployer, "employer", "read"},
	{RoleEmployer, "employer", "manage"},

	{RoleJobSeeker, "attendee", "self"},
	{RoleJobSeeker, "booth", "read"},
	{RoleJobSeeker, "interview", "read"},
	{RoleJobSeeker, "interview", "book"},
	{RoleJobSeeker, "event", "read"},

	{RoleSecurity, "checkin", "create"},
	{RoleSecurity, "checkin", "read"},
	{RoleSecurity, "incident", "create"},
	{RoleSecurity, "incident", "read"},
	{RoleSecurity, "event", "read"},
	{RoleSecurity, "report", "read"},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
