package business

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rcdrguez/quickquote-agent-demo/dao"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

type CustomerService interface {
	Create(ctx context.Context, p *dto.CustomerPayload) (*db.Customer, error)
	// Update 整体覆盖, 不存在时返回 404
	Update(ctx context.Context, id string, p *dto.CustomerPayload) (*db.Customer, error)
	List(ctx context.Context) ([]db.Customer, error)
	// FindByNameOrId 先按id精确匹配, 再按名称忽略大小写匹配; 找不到返回 nil, nil
	FindByNameOrId(ctx context.Context, ref string) (*db.Customer, error)
}

type customerService struct{}

func NewCustomerService() CustomerService {
	return &customerService{}
}

func (s *customerService) Create(_ context.Context, p *dto.CustomerPayload) (*db.Customer, error) {
	c := &db.Customer{
		BaseField: db.BaseField{Id: uuid.NewString(), CreatedAt: utils.IsoNow()},
		Name:      strings.TrimSpace(p.Name),
		Rnc:       p.Rnc,
		Email:     p.Email,
		Phone:     p.Phone,
	}
	if err := dao.App.CustomerDb.Insert(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Update(_ context.Context, id string, p *dto.CustomerPayload) (*db.Customer, error) {
	n, err := dao.App.CustomerDb.Update(id, map[string]interface{}{
		"name":  strings.TrimSpace(p.Name),
		"rnc":   p.Rnc,
		"email": p.Email,
		"phone": p.Phone,
	})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, common.NewNotFound(enum.MsgCustomerNotFound)
	}

	var c db.Customer
	if err := dao.App.CustomerDb.GetById(&c, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewNotFound(enum.MsgCustomerNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (s *customerService) List(_ context.Context) ([]db.Customer, error) {
	list := []db.Customer{}
	if err := dao.App.CustomerDb.GetList(&list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *customerService) FindByNameOrId(_ context.Context, ref string) (*db.Customer, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}

	var c db.Customer
	err := dao.App.CustomerDb.GetById(&c, ref)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err = dao.App.CustomerDb.GetByName(&c, ref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
