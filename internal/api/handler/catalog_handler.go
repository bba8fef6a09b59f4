package handler

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderedHandler 分类、平台、标签、横幅共用的增删改与排序接口
type OrderedHandler[T any, D any] struct {
	svc service.CatalogService[T]
	// build 由请求体构造新记录，apply 把请求体写回已有记录
	build func(req *D) *T
	apply func(req *D, item *T)
}

func (s *OrderedHandler[T, D]) List(c *gin.Context) {
	items, err := s.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *OrderedHandler[T, D]) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := s.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *OrderedHandler[T, D]) Add(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	item, err := s.svc.Add(c.Request.Context(), s.build(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *OrderedHandler[T, D]) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	req, ok := s.bind(c)
	if !ok {
		return
	}
	item, err := s.svc.Update(c.Request.Context(), id, func(item *T) { s.apply(req, item) })
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *OrderedHandler[T, D]) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := s.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Move 返回移动后的完整列表
func (s *OrderedHandler[T, D]) Move(c *gin.Context) {
	var req dto.IndexDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	items, err := s.svc.Move(c.Request.Context(), req.Index, util.Direction(req.Direction))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *OrderedHandler[T, D]) bind(c *gin.Context) (*D, bool) {
	req := new(D)
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, err)
		return nil, false
	}
	if err := util.ValidateDTO(req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return nil, false
	}
	return req, true
}

func active(flag *bool) bool {
	return flag == nil || *flag
}

func NewCategoryHandler(svc service.CatalogService[model.Category]) *OrderedHandler[model.Category, dto.CategoryDTO] {
	apply := func(req *dto.CategoryDTO, item *model.Category) {
		item.Name, item.Image = req.Name, req.Image
		if req.IsActive != nil {
			item.IsActive = *req.IsActive
		}
	}
	return &OrderedHandler[model.Category, dto.CategoryDTO]{
		svc:   svc,
		build: func(req *dto.CategoryDTO) *model.Category {
			return &model.Category{Name: req.Name, Image: req.Image, IsActive: active(req.IsActive)}
		},
		apply: apply,
	}
}

func NewPlatformHandler(svc service.CatalogService[model.Platform]) *OrderedHandler[model.Platform, dto.PlatformDTO] {
	return &OrderedHandler[model.Platform, dto.PlatformDTO]{
		svc:   svc,
		build: func(req *dto.PlatformDTO) *model.Platform {
			return &model.Platform{Name: req.Name, Image: req.Image, Link: req.Link, IsActive: active(req.IsActive)}
		},
		apply: func(req *dto.PlatformDTO, item *model.Platform) {
			item.Name, item.Image, item.Link = req.Name, req.Image, req.Link
			if req.IsActive != nil {
				item.IsActive = *req.IsActive
			}
		},
	}
}

func NewLabelHandler(svc service.CatalogService[model.Label]) *OrderedHandler[model.Label, dto.LabelDTO] {
	return &OrderedHandler[model.Label, dto.LabelDTO]{
		svc:   svc,
		build: func(req *dto.LabelDTO) *model.Label {
			return &model.Label{Title: req.Title, Subtitle: req.Subtitle, Image: req.Image, IsActive: active(req.IsActive)}
		},
		apply: func(req *dto.LabelDTO, item *model.Label) {
			item.Title, item.Subtitle, item.Image = req.Title, req.Subtitle, req.Image
			if req.IsActive != nil {
				item.IsActive = *req.IsActive
			}
		},
	}
}

// NewBannerHandler 横幅只有新增、删除和排序
func NewBannerHandler(svc service.CatalogService[model.Banner]) *OrderedHandler[model.Banner, dto.BannerDTO] {
	return &OrderedHandler[model.Banner, dto.BannerDTO]{
		svc:   svc,
		build: func(req *dto.BannerDTO) *model.Banner {
			return &model.Banner{Image: req.Image, Link: req.Link}
		},
		apply: func(req *dto.BannerDTO, item *model.Banner) {
			item.Image, item.Link = req.Image, req.Link
		},
	}
}
