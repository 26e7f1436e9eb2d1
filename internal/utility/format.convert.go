package utility

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Trả về NilObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// ObjectID2String chuyển primitive.ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// P2Int64 parse chuỗi thành int64, trả về 0 nếu lỗi
func P2Int64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// P2Int parse chuỗi thành int, trả về 0 nếu lỗi
func P2Int(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
