package videohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_tube/internal/api/base/handler"
	usersvc "meta_tube/internal/api/user/service"
	videodto "meta_tube/internal/api/video/dto"
	videomodels "meta_tube/internal/api/video/models"
	videosvc "meta_tube/internal/api/video/service"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
	"meta_tube/internal/storage"
)

// VideoHandler xử lý các request liên quan đến video
type VideoHandler struct {
	*basehdl.BaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]
	VideoService *videosvc.VideoService
	UserService  *usersvc.UserService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	hdl := &VideoHandler{
		VideoService: videoService,
		UserService:  userService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput](videoService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleGetAllVideos liệt kê video công khai có tìm kiếm, sắp xếp, phân trang
// @Router /videos [get]
func (h *VideoHandler) HandleGetAllVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		opts := videodto.VideoListOptions{
			Query:    c.Query("query"),
			SortBy:   c.Query("sortBy"),
			SortType: c.Query("sortType"),
			UserID:   c.Query("userId"),
			Page:     page,
			Limit:    limit,
		}

		data, err := h.VideoService.GetAllVideos(c.Context(), opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetVideoById lấy chi tiết video, tăng lượt xem và ghi vào lịch sử xem
// @Router /videos/:videoId [get]
func (h *VideoHandler) HandleGetVideoById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := parseVideoIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		viewerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		detail, err := h.VideoService.GetVideoById(c.Context(), videoID, viewerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Ghi lịch sử xem, lỗi chỉ log
		if err := h.UserService.AddWatchHistory(c.Context(), viewerID, videoID); err != nil {
			logger.GetAppLogger().
				WithField("user_id", viewerID.Hex()).
				WithField("video_id", videoID.Hex()).
				WithError(err).Warn("Không ghi được lịch sử xem")
		}

		h.HandleResponse(c, detail, nil)
		return nil
	})
}

// HandlePublishVideo đăng video mới: nhận multipart (videoFile bắt buộc, thumbnail optional),
// upload lên dịch vụ lưu trữ rồi lưu metadata.
// @Router /videos [post]
func (h *VideoHandler) HandlePublishVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := videodto.VideoPublishInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoFile, err := c.FormFile("videoFile")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file 'videoFile' trong form data",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		tempVideoPath, err := storage.SaveTemp(videoFile, global.MongoDB_ServerConfig.TempUploadDir)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoRes, err := global.StorageClient.Upload(c.Context(), tempVideoPath, storage.ResourceVideo)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Thumbnail là optional
		var thumbRes *storage.UploadResult
		if thumbFile, err := c.FormFile("thumbnail"); err == nil {
			tempThumbPath, err := storage.SaveTemp(thumbFile, global.MongoDB_ServerConfig.TempUploadDir)
			if err != nil {
				h.rollbackUpload(c, videoRes, nil)
				h.HandleResponse(c, nil, err)
				return nil
			}
			thumbRes, err = global.StorageClient.Upload(c.Context(), tempThumbPath, storage.ResourceImage)
			if err != nil {
				h.rollbackUpload(c, videoRes, nil)
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		video, err := h.VideoService.PublishVideo(c.Context(), ownerID, &input, videoRes, thumbRes)
		if err != nil {
			// Lưu metadata thất bại thì dọn media đã upload
			h.rollbackUpload(c, videoRes, thumbRes)
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, video, nil)
		return nil
	})
}

// rollbackUpload xóa media đã upload khi saga đăng video thất bại giữa chừng (best-effort)
func (h *VideoHandler) rollbackUpload(c fiber.Ctx, videoRes, thumbRes *storage.UploadResult) {
	log := logger.GetAppLogger()
	if videoRes != nil {
		if err := global.StorageClient.Delete(c.Context(), videoRes.PublicID, storage.ResourceVideo); err != nil {
			log.WithField("public_id", videoRes.PublicID).WithError(err).Warn("Không rollback được file video trên dịch vụ lưu trữ")
		}
	}
	if thumbRes != nil {
		if err := global.StorageClient.Delete(c.Context(), thumbRes.PublicID, storage.ResourceImage); err != nil {
			log.WithField("public_id", thumbRes.PublicID).WithError(err).Warn("Không rollback được thumbnail trên dịch vụ lưu trữ")
		}
	}
}

// HandleUpdateVideo cập nhật title/description và thumbnail (optional, multipart)
// @Router /videos/:videoId [patch]
func (h *VideoHandler) HandleUpdateVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := parseVideoIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := videodto.VideoUpdateInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var thumbRes *storage.UploadResult
		if thumbFile, err := c.FormFile("thumbnail"); err == nil {
			tempThumbPath, err := storage.SaveTemp(thumbFile, global.MongoDB_ServerConfig.TempUploadDir)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			thumbRes, err = global.StorageClient.Upload(c.Context(), tempThumbPath, storage.ResourceImage)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		video, oldThumbID, err := h.VideoService.UpdateVideo(c.Context(), videoID, ownerID, &input, thumbRes)
		if err != nil {
			h.rollbackUpload(c, nil, thumbRes)
			h.HandleResponse(c, nil, err)
			return nil
		}

		if oldThumbID != "" {
			if err := global.StorageClient.Delete(c.Context(), oldThumbID, storage.ResourceImage); err != nil {
				logger.GetAppLogger().WithField("public_id", oldThumbID).WithError(err).Warn("Không xóa được thumbnail cũ trên dịch vụ lưu trữ")
			}
		}

		h.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleDeleteVideo xóa video của chính chủ kênh kèm dọn media trên dịch vụ lưu trữ
// @Router /videos/:videoId [delete]
func (h *VideoHandler) HandleDeleteVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := parseVideoIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		deleted, err := h.VideoService.DeleteVideo(c.Context(), videoID, ownerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Dọn media best-effort, document đã xóa xong
		log := logger.GetAppLogger().WithField("video_id", videoID.Hex())
		if deleted.VideoFileID != "" {
			if err := global.StorageClient.Delete(c.Context(), deleted.VideoFileID, storage.ResourceVideo); err != nil {
				log.WithField("public_id", deleted.VideoFileID).WithError(err).Warn("Không xóa được file video trên dịch vụ lưu trữ")
			}
		}
		if deleted.ThumbnailID != "" {
			if err := global.StorageClient.Delete(c.Context(), deleted.ThumbnailID, storage.ResourceImage); err != nil {
				log.WithField("public_id", deleted.ThumbnailID).WithError(err).Warn("Không xóa được thumbnail trên dịch vụ lưu trữ")
			}
		}

		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái công khai của video
// @Router /videos/toggle-publish/:videoId [patch]
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := basehdl.GetUserIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := parseVideoIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.VideoService.TogglePublish(c.Context(), videoID, ownerID)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// parseVideoIDParam đọc và validate param :videoId
func parseVideoIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	idHex := c.Params("videoId")
	if !primitive.IsValidObjectID(idHex) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idHex),
			common.StatusBadRequest,
			nil,
		)
	}
	id, _ := primitive.ObjectIDFromHex(idHex)
	return id, nil
}
