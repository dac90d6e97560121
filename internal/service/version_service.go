package service

import (
	"strings"

	"github.com/waskito/ocpi-versions/internal/domain"
)

// VersionService answers the OCPI Versions module queries.
// It holds only immutable data and is safe for concurrent use.
type VersionService struct {
	baseURL string
	order   []domain.VersionNumber
	modules map[domain.VersionNumber][]domain.ModuleRole
}

// NewVersionService advertises every URL under baseURL. A trailing slash on
// baseURL is ignored.
func NewVersionService(baseURL string) *VersionService {
	return &VersionService{
		baseURL: strings.TrimRight(baseURL, "/"),
		order:   []domain.VersionNumber{domain.Version221},
		modules: map[domain.VersionNumber][]domain.ModuleRole{
			domain.Version221: domain.Modules221,
		},
	}
}

// List returns the supported versions in advertisement order.
// A fresh slice is built on every call.
func (s *VersionService) List() []domain.Version {
	versions := make([]domain.Version, 0, len(s.order))
	for _, v := range s.order {
		versions = append(versions, domain.Version{
			Version: v,
			URL:     s.baseURL + "/versions/" + string(v),
		})
	}
	return versions
}

// Detail returns the module endpoints for versionID. The match is exact:
// no trimming, no case folding.
func (s *VersionService) Detail(versionID string) (*domain.VersionDetail, error) {
	v := domain.VersionNumber(versionID)
	mods, ok := s.modules[v]
	if !ok {
		return nil, domain.ErrUnknownVersion
	}

	endpoints := make([]domain.Endpoint, 0, len(mods))
	for _, m := range mods {
		endpoints = append(endpoints, domain.Endpoint{
			Identifier: m.Module,
			Role:       m.Role,
			URL:        s.baseURL + "/" + string(v) + "/" + string(m.Module),
		})
	}
	return &domain.VersionDetail{Version: v, Endpoints: endpoints}, nil
}
