package views

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"listsync/core/listsync"
	"listsync/core/reconcile"
	"listsync/core/storage"
	"listsync/feature/views/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateViewRequest describes a new view. Empty IDField and Strategy fall back
// to the configured defaults.
type CreateViewRequest struct {
	Name         string `json:"name"`
	SourceObject string `json:"source_object"`
	IDField      string `json:"id_field"`
	Strategy     string `json:"strategy"`
}

// ViewDetail is a view together with its records and decoded selection.
type ViewDetail struct {
	models.View
	Selection []int              `json:"selection"`
	Items     []reconcile.Record `json:"items"`
}

// RefreshOptions controls a refresh.
type RefreshOptions struct {
	reconcile.Options

	// Reload bypasses the snapshot cache.
	Reload bool
}

// RefreshReport is the outcome of a refresh.
type RefreshReport struct {
	ViewID string          `json:"view_id"`
	DryRun bool            `json:"dry_run"`
	Saved  bool            `json:"saved"`
	Plan   *reconcile.Plan `json:"plan"`
}

// Service manages views and refreshes them from their source snapshots.
type Service struct {
	repo   *Repository
	client storage.Client
	bucket string
	cfg    reconcile.Config
	cache  *reconcile.Cache
	logger *zap.Logger

	// locks serializes mutations per view id
	locks sync.Map
}

// NewService creates a new view service.
func NewService(repo *Repository, client storage.Client, bucket string, cfg reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		client: client,
		bucket: bucket,
		cfg:    cfg,
		cache:  reconcile.NewCache(),
		logger: logger,
	}
}

// CreateView stores a new, empty view.
func (s *Service) CreateView(ctx context.Context, req CreateViewRequest) (*ViewDetail, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, listsync.NewArgumentError("name", "must not be empty")
	}
	object := strings.Trim(strings.TrimSpace(req.SourceObject), "/")
	if object == "" {
		return nil, listsync.NewArgumentError("source_object", "must not be empty")
	}

	idField := req.IDField
	if idField == "" {
		idField = s.cfg.IDField
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = s.cfg.Strategy
	}
	kind, err := listsync.ParseKind(strategy)
	if err != nil {
		return nil, err
	}

	view := &models.View{
		ID:           uuid.NewString(),
		Name:         name,
		SourceObject: object,
		IDField:      idField,
		Strategy:     kind.String(),
	}
	if err := s.repo.Create(ctx, view); err != nil {
		return nil, err
	}

	s.logger.Info("View created", zap.String("view", view.ID), zap.String("source", object))
	return &ViewDetail{View: *view, Selection: []int{}, Items: []reconcile.Record{}}, nil
}

// GetView returns a view with its records.
func (s *Service) GetView(ctx context.Context, id string) (*ViewDetail, error) {
	view, items, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return detail(view, items)
}

// ListViews returns every view without items.
func (s *Service) ListViews(ctx context.Context) ([]models.View, error) {
	return s.repo.List(ctx)
}

// SetSelection replaces the selection of a view. Every index must address an item;
// repeated indices are stored once.
func (s *Service) SetSelection(ctx context.Context, id string, selection []int) (*ViewDetail, error) {
	unlock := s.lock(id)
	defer unlock()

	view, items, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clean := make([]int, 0, len(selection))
	seen := make(map[int]struct{}, len(selection))
	for _, idx := range selection {
		if idx < 0 || idx >= len(items) {
			return nil, &listsync.SelectionError{Index: idx, Len: len(items)}
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		clean = append(clean, idx)
	}

	if err := s.repo.UpdateSelection(ctx, id, clean); err != nil {
		return nil, err
	}
	view.Selection = models.EncodeSelection(clean)
	return detail(view, items)
}

// RefreshView reconciles a view with its source snapshot and, unless this is a
// dry run, stores the result. Refreshes of the same view never overlap.
func (s *Service) RefreshView(ctx context.Context, id string, opts RefreshOptions) (*RefreshReport, error) {
	unlock := s.lock(id)
	defer unlock()

	view, items, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	selection, err := view.SelectionIndices()
	if err != nil {
		return nil, fmt.Errorf("corrupt selection on view %s: %w", id, err)
	}

	spec, err := s.spec(view)
	if err != nil {
		return nil, err
	}
	if opts.Reload {
		s.cache.InvalidateSnapshot(spec)
	}

	snap, err := s.cache.GetOrLoadSnapshot(ctx, s.client, s.bucket, spec)
	if err != nil {
		return nil, err
	}

	plan, err := reconcile.BuildPlan(items, snap.Records, selection, spec)
	if err != nil {
		return nil, err
	}

	saved, err := reconcile.ApplyPlan(ctx, s.repo, id, plan, opts.Options)
	if err != nil {
		return nil, err
	}

	s.logger.Info("View refreshed",
		zap.String("view", id),
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("saved", saved),
		zap.Int("deleted", plan.Summary.Deleted),
		zap.Int("changed", plan.Summary.Changed),
		zap.Int("inserted", plan.Summary.Inserted),
		zap.Ints("selection", plan.Selection),
	)

	return &RefreshReport{ViewID: id, DryRun: opts.DryRun, Saved: saved, Plan: plan}, nil
}

// DeleteView removes a view.
func (s *Service) DeleteView(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.locks.Delete(id)
	s.logger.Info("View deleted", zap.String("view", id))
	return nil
}

// PublishSource validates data as a snapshot and uploads it under the source prefix.
// The snapshot must decode with the id field of every view reading name, or with
// the configured default when no view does. Cached snapshots of that object are dropped.
func (s *Service) PublishSource(ctx context.Context, name string, data []byte) (int, error) {
	name = strings.Trim(name, "/")
	if name == "" {
		return 0, listsync.NewArgumentError("name", "must not be empty")
	}

	adapter, err := reconcile.AdapterFor(s.cfg.Format)
	if err != nil {
		return 0, err
	}
	fields, err := s.idFields(ctx, name)
	if err != nil {
		return 0, err
	}

	var records []reconcile.Record
	for _, field := range fields {
		records, err = adapter.Decode(bytes.NewReader(data), field)
		if err != nil {
			return 0, snapshotError(name, err)
		}
	}

	object := s.cfg.ObjectPath(name)
	if err := storage.WriteObject(ctx, s.client, s.bucket, object, data, "application/json"); err != nil {
		return 0, err
	}
	s.cache.InvalidateObject(object)

	s.logger.Info("Source published", zap.String("object", object), zap.Int("records", len(records)))
	return len(records), nil
}

// idFields returns the distinct id fields of the views reading name.
func (s *Service) idFields(ctx context.Context, name string) ([]string, error) {
	views, err := s.repo.ListBySource(ctx, name)
	if err != nil {
		return nil, err
	}

	var fields []string
	seen := make(map[string]struct{}, len(views))
	for _, view := range views {
		if _, ok := seen[view.IDField]; ok {
			continue
		}
		seen[view.IDField] = struct{}{}
		fields = append(fields, view.IDField)
	}
	if len(fields) == 0 {
		fields = []string{s.cfg.IDField}
	}
	return fields, nil
}

// snapshotError keeps record-level failures matchable and reports anything else
// as a malformed argument.
func snapshotError(name string, err error) error {
	if errors.Is(err, reconcile.ErrMissingID) || errors.Is(err, reconcile.ErrDuplicateID) {
		return fmt.Errorf("invalid snapshot %s: %w", name, err)
	}
	return listsync.NewArgumentError("snapshot", err.Error())
}

func (s *Service) spec(view *models.View) (*reconcile.Spec, error) {
	adapter, err := reconcile.AdapterFor(s.cfg.Format)
	if err != nil {
		return nil, err
	}
	kind, err := listsync.ParseKind(view.Strategy)
	if err != nil {
		return nil, err
	}
	return &reconcile.Spec{
		Adapter:        adapter,
		SourceObject:   s.cfg.ObjectPath(view.SourceObject),
		IDField:        view.IDField,
		Strategy:       kind,
		CacheTTL:       s.cfg.CacheTTL(),
		MaxObjectBytes: s.cfg.MaxObjectBytes,
	}, nil
}

func (s *Service) lock(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func detail(view *models.View, items []reconcile.Record) (*ViewDetail, error) {
	selection, err := view.SelectionIndices()
	if err != nil {
		return nil, fmt.Errorf("corrupt selection on view %s: %w", view.ID, err)
	}
	return &ViewDetail{View: *view, Selection: selection, Items: items}, nil
}
