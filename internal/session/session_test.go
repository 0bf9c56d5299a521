// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package session

import (
	"context"
	"testing"
	"time"

	"github.com/ravenbix/rstools/internal/config"
	"github.com/ravenbix/rstools/internal/credstore"
	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/internal/mock"
	"github.com/ravenbix/rstools/internal/proxy"
	"github.com/ravenbix/rstools/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{
			ReportServerURI: "http://config-host/ReportServer",
			Username:        "config-user",
			Password:        "config-pass",
			RequestTimeout:  15 * time.Second,
		},
	}
}

func TestResolve_ConfigOnly(t *testing.T) {
	c := NewConnector(testConfig(), nil, logger.Nop())

	got, err := c.resolve(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, proxy.ClientConfig{
		ReportServerURI: "http://config-host/ReportServer",
		Username:        "config-user",
		Password:        "config-pass",
		Timeout:         15 * time.Second,
	}, got)
}

func TestResolve_ProfileOverridesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfiles := mock.NewMockProfileStore(ctrl)
	mockProfiles.EXPECT().
		Resolve(gomock.Any(), "staging", "secret").
		Return(models.ConnectionProfile{
			Name:            "staging",
			ReportServerURI: "http://staging-host/ReportServer",
			Username:        "staging-user",
		}, "staging-pass", nil)

	c := NewConnector(testConfig(), mockProfiles, logger.Nop())

	got, err := c.resolve(context.Background(), Options{Profile: "staging", Passphrase: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "http://staging-host/ReportServer", got.ReportServerURI)
	assert.Equal(t, "staging-user", got.Username)
	assert.Equal(t, "staging-pass", got.Password)
	assert.Equal(t, 15*time.Second, got.Timeout)
}

func TestResolve_AnonymousProfileKeepsConfigURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfiles := mock.NewMockProfileStore(ctrl)
	mockProfiles.EXPECT().
		Resolve(gomock.Any(), "anon", "").
		Return(models.ConnectionProfile{Name: "anon"}, "", nil)

	c := NewConnector(testConfig(), mockProfiles, logger.Nop())

	got, err := c.resolve(context.Background(), Options{Profile: "anon"})
	require.NoError(t, err)
	// an empty profile field never clears a configured value
	assert.Equal(t, "http://config-host/ReportServer", got.ReportServerURI)
	assert.Equal(t, "config-user", got.Username)
}

func TestResolve_FlagsWinOverProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfiles := mock.NewMockProfileStore(ctrl)
	mockProfiles.EXPECT().
		Resolve(gomock.Any(), "staging", "secret").
		Return(models.ConnectionProfile{
			ReportServerURI: "http://staging-host/ReportServer",
			Username:        "staging-user",
		}, "staging-pass", nil)

	c := NewConnector(testConfig(), mockProfiles, logger.Nop())

	got, err := c.resolve(context.Background(), Options{
		Profile:    "staging",
		Passphrase: "secret",
		ServerURI:  "http://flag-host/ReportServer",
		Username:   "flag-user",
		Password:   "flag-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://flag-host/ReportServer", got.ReportServerURI)
	assert.Equal(t, "flag-user", got.Username)
	assert.Equal(t, "flag-pass", got.Password)
}

func TestResolve_ProfileError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfiles := mock.NewMockProfileStore(ctrl)
	mockProfiles.EXPECT().
		Resolve(gomock.Any(), "staging", "wrong").
		Return(models.ConnectionProfile{}, "", credstore.ErrWrongPassphrase)

	c := NewConnector(testConfig(), mockProfiles, logger.Nop())

	_, err := c.resolve(context.Background(), Options{Profile: "staging", Passphrase: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, credstore.ErrWrongPassphrase)
	assert.Contains(t, err.Error(), `load profile "staging"`)
}

func TestResolve_ProfileWithoutStore(t *testing.T) {
	c := NewConnector(testConfig(), nil, logger.Nop())

	_, err := c.resolve(context.Background(), Options{Profile: "staging"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile store is configured")
}

func TestConnect_NoServerURI(t *testing.T) {
	c := NewConnector(&config.StructuredConfig{}, nil, logger.Nop())

	_, err := c.Connect(context.Background(), Options{})
	assert.ErrorIs(t, err, proxy.ErrNoServerURI)
}

func TestConnect_ReusesClient(t *testing.T) {
	c := NewConnector(testConfig(), nil, logger.Nop())
	ctx := context.Background()

	first, err := c.Connect(ctx, Options{})
	require.NoError(t, err)

	// the second call must not resolve again, even with different flags
	second, err := c.Connect(ctx, Options{ServerURI: "http://other-host/ReportServer"})
	require.NoError(t, err)
	assert.Same(t, first, second)
}
