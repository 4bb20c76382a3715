// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides typed clients for the backend services the
// gateway delegates to: the user service and the product service.
//
// Each client owns one long-lived gRPC connection, shared by all requests,
// and applies a per-call deadline. Every failure is returned as a
// *[ServiceError] with a gateway-owned [ErrorCode]; gRPC status values and
// transport errors never leave this package.
package adapter

import (
	"context"

	"github.com/MKhiriev/auth-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_clients_mock.go -package=mock

// UserClient talks to the user service.
type UserClient interface {
	// LookupUserByEmail fetches the user record registered under email,
	// including its password hash. An unknown email yields a ServiceError
	// with CodeNotFound.
	LookupUserByEmail(ctx context.Context, email string) (models.BackendUser, error)

	// CreateUser registers a new account and returns the user name the
	// service stored.
	CreateUser(ctx context.Context, user models.NewUser) (string, error)
}

// ProductClient talks to the product service.
type ProductClient interface {
	// ListCategories returns all product categories. The result is never nil
	// on success.
	ListCategories(ctx context.Context) ([]models.Category, error)
}
