package service

import (
	"context"
	"time"

	"cpd-events-be/internal/dto"
	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/repository/specification"
	"cpd-events-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITemplateService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowTemplateResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTemplateResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.UpdateTemplateResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTemplateService(uowFactory unitofwork.RepositoryFactory) ITemplateService {
	return &templateService{
		uowFactory: uowFactory,
	}
}

func (c *templateService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowTemplateResponse, 0, len(templates))
	for _, t := range templates {
		result = append(result, &dto.ShowTemplateResponse{
			Id:         t.Id,
			Name:       t.Name,
			PageWidth:  t.PageWidth,
			PageHeight: t.PageHeight,
			Placements: make([]dto.PlacementView, 0),
			CreatedAt:  t.CreatedAt,
			UpdatedAt:  t.UpdatedAt,
		})
	}
	return result, nil
}

func (c *templateService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	template := entity.CertificateTemplate{
		Id:         uuid.New(),
		Name:       req.Name,
		PageWidth:  req.PageWidth,
		PageHeight: req.PageHeight,
		UserId:     userId,
		CreatedAt:  time.Now(),
	}

	if err := uow.TemplateRepository().Create(ctx, &template); err != nil {
		return nil, err
	}

	return &dto.CreateTemplateResponse{Id: template.Id}, nil
}

func (c *templateService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: id},
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

	views := make([]dto.PlacementView, 0, len(placements))
	for _, p := range placements {
		views = append(views, dto.PlacementView{
			FieldKey: p.FieldKey,
			X:        p.X,
			Y:        p.Y,
			FontSize: p.FontSize,
		})
	}

	return &dto.ShowTemplateResponse{
		Id:         template.Id,
		Name:       template.Name,
		PageWidth:  template.PageWidth,
		PageHeight: template.PageHeight,
		Placements: views,
		CreatedAt:  template.CreatedAt,
		UpdatedAt:  template.UpdatedAt,
	}, nil
}

func (c *templateService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.UpdateTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, serverutils.NotFound("template not found")
	}

	now := time.Now()
	template.Name = req.Name
	template.UpdatedAt = &now

	if err := uow.TemplateRepository().Update(ctx, template); err != nil {
		return nil, err
	}

	return &dto.UpdateTemplateResponse{Id: template.Id}, nil
}

func (c *templateService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if template == nil {
		return serverutils.NotFound("template not found")
	}

	return uow.TemplateRepository().Delete(ctx, id)
}
