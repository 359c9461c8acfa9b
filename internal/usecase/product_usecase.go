package usecase

import (
	"context"
	"errors"
	"strings"

	"expediente-admin/internal/converter"
	"expediente-admin/internal/delivery/dto"
	"expediente-admin/internal/delivery/http/middleware"
	"expediente-admin/internal/domain/entity"
	"expediente-admin/internal/domain/repository"
	"expediente-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.ProductResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
}

type productUsecase struct {
	log          *logrus.Logger
	productRepo  repository.ProductRepository
	productCache repository.ProductCache
	editor       *service.RecordEditor
	auditService service.AuditService
}

func NewProductUsecase(
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	productCache repository.ProductCache,
	editor *service.RecordEditor,
	auditService service.AuditService,
) ProductUsecase {
	return &productUsecase{
		log:          log,
		productRepo:  productRepo,
		productCache: productCache,
		editor:       editor,
		auditService: auditService,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := u.editor.PrepareForCreate(ctx, req)
	if err != nil {
		u.logPrepareError("create", err)
		return nil, err
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	response := converter.ProductToResponse(product)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionProductCreate, entity.AuditEntityProduct, product.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *productUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.ProductResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	products, total, err := u.productRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all products: %+v", err)
		return nil, 0, err
	}

	return converter.ProductsToResponses(products), total, nil
}

func (u *productUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	cached, err := u.productCache.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to read product cache: %+v", err)
	}
	if cached != nil {
		return converter.ProductToResponse(cached), nil
	}

	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := u.productCache.Set(ctx, product); err != nil {
		u.log.Warnf("Failed to cache product: %+v", err)
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	existing, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}
	oldValue := converter.ProductToResponse(existing)

	product, err := u.editor.PrepareForUpdate(ctx, existing, req)
	if err != nil {
		u.logPrepareError("update", err)
		return nil, err
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}

	u.evict(ctx, id)

	newValue := converter.ProductToResponse(product)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionProductUpdate, entity.AuditEntityProduct, id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *productUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	oldValue := converter.ProductToResponse(product)

	affectedRows, err := u.productRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete product: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrProductNotFound
	}

	u.evict(ctx, id)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, &userID, entity.AuditActionProductDelete, entity.AuditEntityProduct, id.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// BulkDelete soft-deletes every product in ids or none of them.
func (u *productUsecase) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	if err := u.productRepo.DeleteMany(ctx, ids); err != nil {
		if errors.Is(err, repository.ErrIncompleteDelete) {
			return 0, ErrProductNotFound
		}
		u.log.Warnf("Failed to bulk delete products: %+v", err)
		return 0, err
	}

	u.evict(ctx, ids...)

	refs := make([]string, len(ids))
	for i, id := range ids {
		refs[i] = id.String()
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, &userID, entity.AuditActionProductBulkDelete, entity.AuditEntityProduct, strings.Join(refs, ","), refs); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return len(ids), nil
}

func (u *productUsecase) evict(ctx context.Context, ids ...uuid.UUID) {
	if err := u.productCache.Delete(ctx, ids...); err != nil {
		u.log.Warnf("Failed to evict product cache: %+v", err)
	}
}

func (u *productUsecase) logPrepareError(op string, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		u.log.Debugf("Rejected product %s: %v", op, verr)
		return
	}
	u.log.Warnf("Failed to prepare product %s: %+v", op, err)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
