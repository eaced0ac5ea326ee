package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

// projectsSrv backs all three project mutations; unlike media items, the
// project entity is small enough that splitting it per operation buys nothing.
type projectsSrv struct {
	store port.ContentStore
	genID port.IDGen
}

func NewProjectCreator(store port.ContentStore, genID port.IDGen) port.ProjectCreator {
	return &projectsSrv{store: store, genID: genID}
}

func NewProjectUpdater(store port.ContentStore) port.ProjectUpdater {
	return &projectsSrv{store: store}
}

func NewProjectDeleter(store port.ContentStore) port.ProjectDeleter {
	return &projectsSrv{store: store}
}

func (s *projectsSrv) CreateProject(ctx context.Context, in port.ProjectInput) (model.Project, error) {
	p, err := projectFromInput(in)
	if err != nil {
		return model.Project{}, err
	}
	p.ID = s.genID()

	st := s.store.Load(ctx)
	st.Projects = append(st.Projects, p)
	if err := s.store.Save(ctx, st); err != nil {
		return model.Project{}, err
	}

	return p, nil
}

func (s *projectsSrv) UpdateProject(ctx context.Context, id string, in port.ProjectInput) (model.Project, error) {
	p, err := projectFromInput(in)
	if err != nil {
		return model.Project{}, err
	}
	p.ID = id

	st := s.store.Load(ctx)
	for i := range st.Projects {
		if st.Projects[i].ID != id {
			continue
		}
		st.Projects[i] = p
		if err := s.store.Save(ctx, st); err != nil {
			return model.Project{}, err
		}
		return p, nil
	}

	// unknown id: silent no-op
	return p, nil
}

func (s *projectsSrv) DeleteProject(ctx context.Context, id string) error {
	st := s.store.Load(ctx)

	kept := st.Projects[:0:0]
	for _, p := range st.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(st.Projects) {
		return nil
	}

	st.Projects = kept
	return s.store.Save(ctx, st)
}

func projectFromInput(in port.ProjectInput) (model.Project, error) {
	title := strings.TrimSpace(in.Title)
	category := strings.TrimSpace(in.Category)
	desc := strings.TrimSpace(in.Description)

	if title == "" {
		return model.Project{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if category == "" {
		return model.Project{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if desc == "" {
		return model.Project{}, fmt.Errorf("%w: description is required", ErrValidation)
	}

	sourceType := model.SourceType(in.SourceType)
	if sourceType != model.SourceTypeFile && sourceType != model.SourceTypeURL {
		sourceType = model.SourceTypeURL
	}

	p := model.Project{
		Title:       title,
		Category:    category,
		Description: desc,
		Thumbnail:   strings.TrimSpace(in.Thumbnail),
		URL:         strings.TrimSpace(in.URL),
		SourceType:  sourceType,
	}
	p.Normalize()

	return p, nil
}
