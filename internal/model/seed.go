package model

import (
	"bdconsulting/internal/auth"
	"bdconsulting/internal/config"
	"bdconsulting/internal/entity"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// defaultContent 是初次启动时写入的站点文案，已存在的键不会被覆盖。
var defaultContent = []entity.DbContent{
	{Page: "home", Section: "hero", Key: "title", Value: "Transform Your Data Into Strategic Advantage", Type: entity.ContentTypeText},
	{Page: "home", Section: "hero", Key: "subtitle", Value: "Brandenburg Data Consulting delivers expert data solutions that drive business growth. From data modeling to Agentic AI implementation, we turn complex data challenges into competitive advantages.", Type: entity.ContentTypeText},
	{Page: "home", Section: "stats", Key: "accuracy", Value: "99", Type: entity.ContentTypeText},
	{Page: "home", Section: "stats", Key: "efficiency", Value: "50", Type: entity.ContentTypeText},
	{Page: "home", Section: "stats", Key: "projects", Value: "25+", Type: entity.ContentTypeText},

	{Page: "about", Section: "main", Key: "title", Value: "Your Trusted Data Partner", Type: entity.ContentTypeText},
	{Page: "about", Section: "main", Key: "description", Value: "Brandenburg Data Consulting specializes in transforming complex data challenges into strategic business advantages. With deep expertise in modern data technologies and AI solutions, we help organizations unlock the full potential of their data assets.", Type: entity.ContentTypeText},

	{Page: "contact", Section: "info", Key: "email", Value: "hello@brandenburgdata.com", Type: entity.ContentTypeText},
	{Page: "contact", Section: "info", Key: "phone", Value: "+1 (555) 123-4567", Type: entity.ContentTypeText},
	{Page: "contact", Section: "info", Key: "location", Value: "Remote & On-site Consulting Available", Type: entity.ContentTypeText},
}

// SeedDefaults creates the bootstrap admin account and the default page
// content. It is safe to call on every startup.
func SeedDefaults(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}

	count, err := repo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count == 0 {
		email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin := &entity.DbUser{
			Email:        email,
			PasswordHash: hash,
			Role:         entity.UserRoleAdmin,
		}
		if err := repo.CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		logrus.WithField("email", email).Info("default admin user created")
	}

	if err := repo.SeedContent(ctx, defaultContent); err != nil {
		return fmt.Errorf("seed default content: %w", err)
	}
	return nil
}
