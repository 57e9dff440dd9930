package service

import (
	"context"
	"errors"
	"time"

	"cpd-events-be/internal/dto"
	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/pkg/logger"
	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/repository/memory"
	"cpd-events-be/internal/repository/specification"
	"cpd-events-be/internal/repository/unitofwork"
	"cpd-events-be/pkg/events"
	"cpd-events-be/pkg/layout"
	pktNats "cpd-events-be/pkg/nats"
	"cpd-events-be/pkg/render"
	"cpd-events-be/pkg/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IEditorService drives the field-position editor. One session maps to one
// organizer editing one template; all per-session operations take the
// session lock, so the interaction model stays strictly sequential the way
// a single browser tab is.
type IEditorService interface {
	Open(ctx context.Context, userId uuid.UUID, req *dto.OpenEditorRequest) (*dto.OpenEditorResponse, error)
	Layout(userId uuid.UUID, sessionId string) (*dto.LayoutResponse, error)
	ReportDimensions(userId uuid.UUID, sessionId string, req *dto.ReportDimensionsRequest) (*dto.LayoutResponse, error)
	BeginDrag(userId uuid.UUID, sessionId string, req *dto.BeginDragRequest) error
	MoveDrag(userId uuid.UUID, sessionId string, req *dto.MoveDragRequest) (*dto.LayoutResponse, error)
	EndDrag(userId uuid.UUID, sessionId string) error
	SetField(userId uuid.UUID, sessionId string, req *dto.SetFieldRequest) (*dto.LayoutResponse, error)
	SetScale(userId uuid.UUID, sessionId string, req *dto.SetScaleRequest) (*dto.LayoutResponse, error)
	Preview(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.PreviewResponse, error)
	FetchPreview(ctx context.Context, previewId string) ([]byte, error)
	Save(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.SaveLayoutResponse, error)
	Close(userId uuid.UUID, sessionId string) error
}

type editorService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	redis          *redis.Client
	eventPublisher *pktNats.Publisher
	previewTTL     time.Duration
	logger         logger.ILogger
}

func NewEditorService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	redisClient *redis.Client,
	eventPublisher *pktNats.Publisher,
	previewTTL time.Duration,
	log logger.ILogger,
) IEditorService {
	return &editorService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		redis:          redisClient,
		eventPublisher: eventPublisher,
		previewTTL:     previewTTL,
		logger:         log,
	}
}

func (c *editorService) Open(ctx context.Context, userId uuid.UUID, req *dto.OpenEditorRequest) (*dto.OpenEditorResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: req.TemplateId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, serverutils.NotFound("template not found")
	}

	placements, err := uow.FieldPlacementRepository().FindAll(ctx,
		specification.ByTemplateID{TemplateID: template.Id},
	)
	if err != nil {
		return nil, err
	}

	saved := make(map[layout.FieldID]layout.Position, len(placements))
	for _, p := range placements {
		saved[layout.FieldID(p.FieldKey)] = layout.Position{
			X:        p.X,
			Y:        p.Y,
			FontSize: p.FontSize,
		}
	}

	scale := layout.ComputeInitialScale(req.ViewportWidth, template.PageWidth, layout.DefaultViewportPadding)

	editor := layout.NewEditor(nil)
	editor.Initialize(saved, template.PageWidth, template.PageHeight, scale)

	session := store.NewEditorSession(userId, template.Id, editor)
	session.ViewportWidth = req.ViewportWidth
	c.sessions.Save(session)

	return &dto.OpenEditorResponse{
		SessionId:  session.ID,
		Scale:      editor.Scale(),
		PageWidth:  template.PageWidth,
		PageHeight: template.PageHeight,
		Fields:     fieldViews(editor),
	}, nil
}

func (c *editorService) Layout(userId uuid.UUID, sessionId string) (*dto.LayoutResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()
	return layoutResponse(session), nil
}

func (c *editorService) ReportDimensions(userId uuid.UUID, sessionId string, req *dto.ReportDimensionsRequest) (*dto.LayoutResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	// Resize observers fire repeatedly with identical dimensions; only a
	// real change reflows the layout.
	if req.ViewportWidth != session.ViewportWidth {
		session.ViewportWidth = req.ViewportWidth
		pageWidth, _ := session.Editor.PageSize()
		session.Editor.SetScale(layout.ComputeInitialScale(req.ViewportWidth, pageWidth, layout.DefaultViewportPadding))
	}

	return layoutResponse(session), nil
}

func (c *editorService) BeginDrag(userId uuid.UUID, sessionId string, req *dto.BeginDragRequest) error {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return err
	}
	session.Lock()
	defer session.Unlock()

	if err := session.Editor.BeginDrag(layout.FieldID(req.FieldId)); err != nil {
		return serverutils.BadRequest(err.Error())
	}
	return nil
}

func (c *editorService) MoveDrag(userId uuid.UUID, sessionId string, req *dto.MoveDragRequest) (*dto.LayoutResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	session.Editor.UpdateDrag(req.PointerX, req.PointerY, layout.Bounds{
		X:      req.ContainerX,
		Y:      req.ContainerY,
		Width:  req.ContainerWidth,
		Height: req.ContainerHeight,
	})

	return layoutResponse(session), nil
}

func (c *editorService) EndDrag(userId uuid.UUID, sessionId string) error {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return err
	}
	session.Lock()
	defer session.Unlock()

	session.Editor.EndDrag()
	return nil
}

func (c *editorService) SetField(userId uuid.UUID, sessionId string, req *dto.SetFieldRequest) (*dto.LayoutResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if err := session.Editor.SetFieldProperty(layout.FieldID(req.FieldId), layout.Property(req.Property), req.Value); err != nil {
		return nil, serverutils.BadRequest(err.Error())
	}

	return layoutResponse(session), nil
}

func (c *editorService) SetScale(userId uuid.UUID, sessionId string, req *dto.SetScaleRequest) (*dto.LayoutResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	session.Editor.SetScale(req.Scale)
	return layoutResponse(session), nil
}

func (c *editorService) Preview(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.PreviewResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}

	session.Lock()
	if session.PreviewBusy {
		session.Unlock()
		return nil, serverutils.Conflict("preview generation already in progress")
	}
	session.PreviewBusy = true
	positions := session.Editor.DocumentPositions()
	pageWidth, pageHeight := session.Editor.PageSize()
	session.Unlock()

	defer func() {
		session.Lock()
		session.PreviewBusy = false
		session.Unlock()
	}()

	pdfBytes, err := render.CertificatePDF(render.Certificate{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Placements: positions,
		Values:     render.SampleValues(),
	})
	if err != nil {
		c.logger.Error("EditorService", "Preview rendering failed", map[string]interface{}{"session_id": sessionId, "error": err.Error()})
		return nil, err
	}

	previewId := uuid.New().String()
	if err := c.redis.Set(ctx, previewKey(previewId), pdfBytes, c.previewTTL).Err(); err != nil {
		return nil, err
	}

	return &dto.PreviewResponse{PreviewId: previewId}, nil
}

func (c *editorService) FetchPreview(ctx context.Context, previewId string) ([]byte, error) {
	data, err := c.redis.Get(ctx, previewKey(previewId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, serverutils.NotFound("preview not found or expired")
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *editorService) Save(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.SaveLayoutResponse, error) {
	session, err := c.getSession(userId, sessionId)
	if err != nil {
		return nil, err
	}

	session.Lock()
	if session.SaveBusy {
		session.Unlock()
		return nil, serverutils.Conflict("save already in progress")
	}
	session.SaveBusy = true
	positions := session.Editor.DocumentPositions()
	fields := session.Editor.Fields()
	templateId := session.TemplateID
	session.Unlock()

	defer func() {
		session.Lock()
		session.SaveBusy = false
		session.Unlock()
	}()

	placements := make([]*entity.FieldPlacement, 0, len(fields))
	for _, f := range fields {
		pos, ok := positions[f.ID]
		if !ok {
			continue
		}
		placements = append(placements, &entity.FieldPlacement{
			Id:         uuid.New(),
			TemplateId: templateId,
			FieldKey:   string(f.ID),
			X:          pos.X,
			Y:          pos.Y,
			FontSize:   pos.FontSize,
			CreatedAt:  time.Now(),
		})
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.FieldPlacementRepository().DeleteAllByTemplateId(ctx, templateId); err != nil {
		return nil, err
	}
	if err := uow.FieldPlacementRepository().CreateBatch(ctx, placements); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if c.eventPublisher != nil {
		evt := events.NewLayoutSaved(templateId, userId)
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.logger.Warn("EditorService", "Failed to publish LAYOUT_SAVED", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.SaveLayoutResponse{
		TemplateId: templateId,
		Saved:      len(placements),
	}, nil
}

func (c *editorService) Close(userId uuid.UUID, sessionId string) error {
	if _, err := c.getSession(userId, sessionId); err != nil {
		return err
	}
	c.sessions.Delete(sessionId)
	return nil
}

// getSession resolves and refreshes a session. An unknown id and a session
// owned by somebody else are indistinguishable to the caller.
func (c *editorService) getSession(userId uuid.UUID, sessionId string) (*store.EditorSession, error) {
	session, ok := c.sessions.Get(sessionId)
	if !ok || session.UserID != userId {
		return nil, serverutils.NotFound("editor session not found")
	}
	c.sessions.Touch(sessionId)
	return session, nil
}

// layoutResponse snapshots the session state. Callers hold the lock.
func layoutResponse(session *store.EditorSession) *dto.LayoutResponse {
	pageWidth, pageHeight := session.Editor.PageSize()
	return &dto.LayoutResponse{
		Scale:      session.Editor.Scale(),
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Fields:     fieldViews(session.Editor),
	}
}

func fieldViews(editor *layout.Editor) []dto.FieldView {
	fields := editor.Fields()
	views := make([]dto.FieldView, 0, len(fields))
	for _, f := range fields {
		views = append(views, dto.FieldView{
			Id:       string(f.ID),
			Label:    f.Label,
			X:        f.X,
			Y:        f.Y,
			FontSize: f.FontSize,
		})
	}
	return views
}

func previewKey(previewId string) string {
	return "preview:" + previewId
}
