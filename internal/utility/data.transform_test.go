// Package utility - Test parse tag transform và chuyển đổi giá trị DTO sang Model.
package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	t.Run("tag rỗng không transform", func(t *testing.T) {
		config, err := ParseTransformTag("")
		require.NoError(t, err)
		assert.Equal(t, "", config.Type)
		assert.False(t, config.Optional)
	})

	t.Run("chỉ có type", func(t *testing.T) {
		config, err := ParseTransformTag("str_objectid")
		require.NoError(t, err)
		assert.Equal(t, "str_objectid", config.Type)
	})

	t.Run("type kèm optional", func(t *testing.T) {
		config, err := ParseTransformTag("str_objectid_ptr,optional")
		require.NoError(t, err)
		assert.Equal(t, "str_objectid_ptr", config.Type)
		assert.True(t, config.Optional)
		assert.False(t, config.Required)
	})

	t.Run("type kèm required", func(t *testing.T) {
		config, err := ParseTransformTag("str_objectid,required")
		require.NoError(t, err)
		assert.True(t, config.Required)
	})

	t.Run("format cho time", func(t *testing.T) {
		config, err := ParseTransformTag("str_time,format=2006-01-02")
		require.NoError(t, err)
		assert.Equal(t, "str_time", config.Type)
		assert.Equal(t, "2006-01-02", config.Format)
	})

	t.Run("default và map", func(t *testing.T) {
		config, err := ParseTransformTag("str_bool,default=true,map=IsPublished")
		require.NoError(t, err)
		assert.Equal(t, "true", config.Default)
		assert.Equal(t, "IsPublished", config.MapTo)
	})
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	objIDType := reflect.TypeOf(primitive.ObjectID{})

	t.Run("hex hợp lệ thành ObjectID", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid")
		hex := primitive.NewObjectID().Hex()

		got, err := TransformFieldValue(hex, config, objIDType)
		require.NoError(t, err)

		objID, ok := got.(primitive.ObjectID)
		require.True(t, ok)
		assert.Equal(t, hex, objID.Hex())
	})

	t.Run("hex sai trả lỗi", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid")
		_, err := TransformFieldValue("không-phải-hex", config, objIDType)
		assert.Error(t, err)
	})

	t.Run("optional với chuỗi rỗng trả nil", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid,optional")
		got, err := TransformFieldValue("", config, objIDType)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("required với chuỗi rỗng trả lỗi", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid,required")
		_, err := TransformFieldValue("", config, objIDType)
		assert.Error(t, err)
	})
}

func TestTransformFieldValue_ObjectIDPtr(t *testing.T) {
	ptrType := reflect.TypeOf((*primitive.ObjectID)(nil))
	config, _ := ParseTransformTag("str_objectid_ptr,optional")

	t.Run("hex hợp lệ thành pointer", func(t *testing.T) {
		hex := primitive.NewObjectID().Hex()
		got, err := TransformFieldValue(hex, config, ptrType)
		require.NoError(t, err)

		objID, ok := got.(*primitive.ObjectID)
		require.True(t, ok)
		require.NotNil(t, objID)
		assert.Equal(t, hex, objID.Hex())
	})

	t.Run("nil giữ nguyên nil", func(t *testing.T) {
		got, err := TransformFieldValue(nil, config, ptrType)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTransformFieldValue_Scalars(t *testing.T) {
	t.Run("str_int64", func(t *testing.T) {
		config, _ := ParseTransformTag("str_int64")
		got, err := TransformFieldValue("42", config, reflect.TypeOf(int64(0)))
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)
	})

	t.Run("str_bool", func(t *testing.T) {
		config, _ := ParseTransformTag("str_bool")
		got, err := TransformFieldValue("true", config, reflect.TypeOf(false))
		require.NoError(t, err)
		assert.Equal(t, true, got)
	})

	t.Run("str_time với format tùy chỉnh", func(t *testing.T) {
		config, _ := ParseTransformTag("str_time,format=2006-01-02")
		got, err := TransformFieldValue("2024-01-15", config, reflect.TypeOf(int64(0)))
		require.NoError(t, err)

		ts, ok := got.(int64)
		require.True(t, ok)
		assert.Greater(t, ts, int64(0))
	})

	t.Run("default được áp dụng khi giá trị rỗng", func(t *testing.T) {
		config, _ := ParseTransformTag("str_int64,default=10")
		got, err := TransformFieldValue("", config, reflect.TypeOf(int64(0)))
		require.NoError(t, err)
		assert.Equal(t, int64(10), got)
	})

	t.Run("không có type giữ nguyên giá trị", func(t *testing.T) {
		config, _ := ParseTransformTag("")
		got, err := TransformFieldValue("giữ nguyên", config, reflect.TypeOf(""))
		require.NoError(t, err)
		assert.Equal(t, "giữ nguyên", got)
	})
}
