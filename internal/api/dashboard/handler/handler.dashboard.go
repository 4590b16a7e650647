package dashboardhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "meta_tube/internal/api/base/handler"
	basemodels "meta_tube/internal/api/base/models"
	dashboardsvc "meta_tube/internal/api/dashboard/service"
)

// DashboardHandler xử lý các request về bảng điều khiển kênh.
// Không embed BaseHandler vì dashboard chỉ đọc số liệu tổng hợp, không có CRUD.
type DashboardHandler struct {
	DashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo mới DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	dashboardService, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}
	return &DashboardHandler{DashboardService: dashboardService}, nil
}

// HandleGetChannelStats trả về số liệu tổng hợp kênh của user đang đăng nhập
// @Router /dashboard/stats [get]
func (h *DashboardHandler) HandleGetChannelStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		channelID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		stats, err := h.DashboardService.GetChannelStats(c.Context(), channelID)
		basehdl.WriteResponse(c, stats, err)
		return nil
	})
}

// HandleGetChannelVideos liệt kê toàn bộ video của kênh, kể cả chưa công khai (phân trang)
// @Router /dashboard/videos [get]
func (h *DashboardHandler) HandleGetChannelVideos(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		channelID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
		page, limit = basemodels.SanitizePagination(page, limit)

		data, err := h.DashboardService.GetChannelVideos(c.Context(), channelID, page, limit)
		basehdl.WriteResponse(c, data, err)
		return nil
	})
}
