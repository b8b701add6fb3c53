package model

import (
	"bdconsulting/internal/entity"
	"context"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户
	CreateUser(ctx context.Context, user *entity.DbUser) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	UpdateUserPassword(ctx context.Context, id uint, passwordHash string) error
	CountAdmins(ctx context.Context) (int64, error)

	// 页面内容
	UpsertContent(ctx context.Context, item *entity.DbContent) error
	SeedContent(ctx context.Context, items []entity.DbContent) error
	UpdateContent(ctx context.Context, page, section, key, value, contentType string) error
	DeleteContent(ctx context.Context, page, section, key string) (int64, error)
	ListContentByPage(ctx context.Context, page string) ([]entity.DbContent, error)
	ListContentBySection(ctx context.Context, page, section string) ([]entity.DbContent, error)
	ListAllContent(ctx context.Context) ([]entity.DbContent, error)

	// 联系消息
	CreateContactMessage(ctx context.Context, msg *entity.DbContactMessage) error
	ListContactMessages(ctx context.Context, params *entity.MessageQuery) ([]entity.DbContactMessage, *entity.Meta, error)
	UpdateContactMessageStatus(ctx context.Context, id uint, status string) error
	CountContactMessages(ctx context.Context, status string) (int64, error)
	RecentContactMessages(ctx context.Context, limit int) ([]entity.DbContactMessage, error)

	// 博客
	ListPublishedPosts(ctx context.Context) ([]entity.DbBlogPost, error)
	GetPublishedPostBySlug(ctx context.Context, slug string) (*entity.DbBlogPost, error)
	ListPosts(ctx context.Context, params *entity.AdminListQuery) ([]entity.DbBlogPost, *entity.Meta, error)
	CountPosts(ctx context.Context, status string) (int64, error)

	// 案例
	ListPublishedPortfolio(ctx context.Context) ([]entity.DbPortfolioItem, error)
	GetPublishedPortfolioBySlug(ctx context.Context, slug string) (*entity.DbPortfolioItem, error)
	ListPortfolio(ctx context.Context, params *entity.AdminListQuery) ([]entity.DbPortfolioItem, *entity.Meta, error)
	CountPortfolio(ctx context.Context, status string) (int64, error)

	// 客户评价
	ListTestimonials(ctx context.Context) ([]entity.DbTestimonial, error)

	// 咨询预约
	CreateConsultation(ctx context.Context, consultation *entity.DbConsultation) error
}
