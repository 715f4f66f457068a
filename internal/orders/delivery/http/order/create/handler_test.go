package create_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daitlovv/gozon-shop/internal/orders/delivery/http/order/create"
	"github.com/daitlovv/gozon-shop/internal/orders/delivery/http/order/create/mocks"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	orderID := uuid.New()

	type mockBehavior func(creator *mocks.MockorderCreator)

	tCases := []struct {
		name         string
		userIDHeader string
		reqBody      string
		mockBehavior mockBehavior
		wantCode     int
	}{
		{
			name:         "ok",
			userIDHeader: userID.String(),
			reqBody:      `{"amount": "320.50", "description": "books"}`,
			mockBehavior: func(creator *mocks.MockorderCreator) {
				creator.EXPECT().
					Create(gomock.Any(), userID, gomock.Any(), "books").
					Return(orderID, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "missing_user_id_header",
			userIDHeader: "",
			reqBody:      `{"amount": "320.50", "description": "books"}`,
			mockBehavior: func(creator *mocks.MockorderCreator) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "invalid_amount",
			userIDHeader: userID.String(),
			reqBody:      `{"amount": "-5", "description": "books"}`,
			mockBehavior: func(creator *mocks.MockorderCreator) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "duplicate_order",
			userIDHeader: userID.String(),
			reqBody:      `{"amount": "320.50", "description": "books"}`,
			mockBehavior: func(creator *mocks.MockorderCreator) {
				creator.EXPECT().
					Create(gomock.Any(), userID, gomock.Any(), "books").
					Return(uuid.Nil, internalErrors.ErrDuplicateOrder)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creator := mocks.NewMockorderCreator(ctrl)
			tCase.mockBehavior(creator)

			handler := create.NewHandler(logger.NewSlogLogger(logger.EnvLocal), creator)

			req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewBufferString(tCase.reqBody))
			if tCase.userIDHeader != "" {
				req.Header.Set("user_id", tCase.userIDHeader)
			}

			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			require.Equal(t, tCase.wantCode, rec.Code)

			if tCase.wantCode == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.Equal(t, orderID.String(), resp["order_id"])
			}
		})
	}
}
