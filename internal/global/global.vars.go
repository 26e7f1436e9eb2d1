package global

import (
	"aletheia/config"
	"aletheia/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Dashboard_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Dashboard_CollectionName struct {
	DashboardSnapshots string // Tên collection cho snapshot của dashboard store

	Avisos                    string // Tên collection cho avisos (thông báo chiến dịch)
	Adversarios               string // Tên collection cho đối thủ chính trị
	AdversarioActualizaciones string // Tên collection cho cập nhật về đối thủ

	// Comunicación Collections
	ComPublicidad   string // Tên collection cho quảng cáo
	ComMateriales   string // Tên collection cho tài liệu truyền thông
	ComEarnedMedia  string // Tên collection cho earned media
	ComPrensaPagada string // Tên collection cho báo chí trả phí
	ComVocerias     string // Tên collection cho người phát ngôn

	// Estrategia Collections
	EstDiaD       string // Tên collection cho kế hoạch ngày bầu cử
	EstDebate     string // Tên collection cho chuẩn bị debate
	EstPrecampana string // Tên collection cho tiền chiến dịch
	EstCalendario string // Tên collection cho lịch sự kiện
	EstPlaneacion string // Tên collection cho hoạch định chiến lược

	Encuestas string // Tên collection cho khảo sát ý kiến
}

// Các biến toàn cục
var Validate *validator.Validate                                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_Dashboard_CollectionName = *new(MongoDB_Dashboard_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// GetMongoCollection lấy collection từ registry theo tên, trả về nil nếu chưa đăng ký
func GetMongoCollection(name string) *mongo.Collection {
	col, exists := RegistryCollections.Get(name)
	if !exists {
		return nil
	}
	return col
}
