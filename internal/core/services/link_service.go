package services

import (
	"context"
	"time"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
)

// linkService manages the directed record link graph and answers
// reachability and cycle queries over it.
type linkService struct {
	linkRepo portsrepo.LinkRepository
	now      func() time.Time
}

// NewLinkService creates a link graph service over the given store.
func NewLinkService(linkRepo portsrepo.LinkRepository) portssvc.LinkGraphSvcFacade {
	return &linkService{
		linkRepo: linkRepo,
		now:      time.Now,
	}
}

var _ portssvc.LinkGraphSvcFacade = (*linkService)(nil)

// Links returns the record's outgoing links in insertion order.
func (s *linkService) Links(ctx context.Context, recordID string) ([]domain.LinkedRecord, error) {
	return s.linkRepo.FindLinks(ctx, recordID)
}

// AddLink appends a directed link from sourceID to the target record.
// Idempotent on the target record id; the reverse edge is not created.
func (s *linkService) AddLink(ctx context.Context, sourceID string, target domain.LinkedRecord) error {
	if target.LinkedAt.IsZero() {
		target.LinkedAt = s.now().UTC()
	}
	return s.linkRepo.SaveLink(ctx, sourceID, target)
}

// LinkBoth adds the forward link and its mirror edge. target describes the
// record being linked to; source describes the record linked from, for the
// reverse adjacency list.
func (s *linkService) LinkBoth(ctx context.Context, sourceID string, target domain.LinkedRecord, source domain.LinkedRecord) error {
	if err := s.AddLink(ctx, sourceID, target); err != nil {
		return err
	}
	return s.AddLink(ctx, target.RecordID, source)
}

// RemoveLink removes the forward link from sourceID to targetID.
func (s *linkService) RemoveLink(ctx context.Context, sourceID, targetID string) error {
	return s.linkRepo.DeleteLink(ctx, sourceID, targetID)
}

// IsReachable reports whether targetID can be reached from sourceID by
// following forward links. Mark-on-enter depth-first search, so every node
// is visited at most once even on cyclic data.
func (s *linkService) IsReachable(ctx context.Context, sourceID, targetID string) (bool, error) {
	if sourceID == targetID {
		return true, nil
	}

	visited := map[string]bool{sourceID: true}
	stack := []string{sourceID}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		links, err := s.linkRepo.FindLinks(ctx, node)
		if err != nil {
			return false, err
		}
		for _, link := range links {
			if link.RecordID == targetID {
				return true, nil
			}
			if !visited[link.RecordID] {
				visited[link.RecordID] = true
				stack = append(stack, link.RecordID)
			}
		}
	}
	return false, nil
}

// dfsColor is the node state used by the cycle check.
type dfsColor int

const (
	colorWhite dfsColor = iota // unvisited
	colorGray                  // on the current path
	colorBlack                 // fully explored
)

// HasCycle reports whether any cycle is reachable from sourceID. Standard
// three-color depth-first search: a gray-to-gray edge is a back edge.
func (s *linkService) HasCycle(ctx context.Context, sourceID string) (bool, error) {
	colors := make(map[string]dfsColor)
	return s.visit(ctx, sourceID, colors)
}

func (s *linkService) visit(ctx context.Context, node string, colors map[string]dfsColor) (bool, error) {
	colors[node] = colorGray
	links, err := s.linkRepo.FindLinks(ctx, node)
	if err != nil {
		return false, err
	}
	for _, link := range links {
		switch colors[link.RecordID] {
		case colorGray:
			return true, nil
		case colorWhite:
			cyclic, err := s.visit(ctx, link.RecordID, colors)
			if err != nil || cyclic {
				return cyclic, err
			}
		}
	}
	colors[node] = colorBlack
	return false, nil
}
