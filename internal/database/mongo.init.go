package database

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// EnsureCollections tạo các collection còn thiếu trong database.
// Collection đã tồn tại được giữ nguyên.
func EnsureCollections(ctx context.Context, db *mongo.Database, names []string) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	log := logger.WithModule("database")
	for _, name := range names {
		if have[name] {
			continue
		}
		log.Infof("Collection %s chưa tồn tại, tạo mới.", name)
		if err := db.CreateCollection(ctx, name); err != nil {
			// Instance khác có thể vừa tạo collection này
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
				continue
			}
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	log.Infof("Database and collections are ensured in database: %s", db.Name())
	return nil
}

// indexSpec là một index được khai báo qua tag `index` của model
type indexSpec struct {
	name    string
	keys    bson.D
	options *options.IndexOptions
}

// parseIndexTag phân tách tag index: các cấu hình cách nhau bởi ';',
// mỗi cấu hình gồm các phần "key" hoặc "key:value" cách nhau bởi ','.
// Ví dụ: `index:"unique"`, `index:"single,order:-1"`.
func parseIndexTag(tag string) []map[string]string {
	result := []map[string]string{}
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, subPart := range strings.Split(part, ",") {
			subPart = strings.TrimSpace(subPart)
			if subPart == "" {
				continue
			}
			kv := strings.SplitN(subPart, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		if len(entry) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// parseOrder trả về 1 hoặc -1 theo "order:-1"
func parseOrder(entry map[string]string) int {
	if entry["order"] == "-1" {
		return -1
	}
	return 1
}

// indexSpecs đọc tag `index` của model và trả về danh sách index cần có
func indexSpecs(model interface{}) []indexSpec {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	var specs []indexSpec
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := strings.SplitN(field.Tag.Get("bson"), ",", 2)[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, entry := range parseIndexTag(tag) {
			if _, ok := entry["single"]; ok {
				name := bsonField + "_single"
				specs = append(specs, indexSpec{
					name:    name,
					keys:    bson.D{{Key: bsonField, Value: parseOrder(entry)}},
					options: options.Index().SetName(name),
				})
			}
			if _, ok := entry["unique"]; ok {
				name := bsonField + "_unique"
				opts := options.Index().SetName(name).SetUnique(true)
				if _, sparse := entry["sparse"]; sparse {
					opts.SetSparse(true)
				}
				specs = append(specs, indexSpec{
					name:    name,
					keys:    bson.D{{Key: bsonField, Value: 1}},
					options: opts,
				})
			}
		}
	}
	return specs
}

// compareIndex so sánh index hiện có với cấu hình mới (keys và unique)
func compareIndex(existingIndex bson.M, keys bson.D, opts *options.IndexOptions) bool {
	existingKeys, ok := existingIndex["key"].(bson.M)
	if !ok || len(existingKeys) != len(keys) {
		return false
	}

	for _, key := range keys {
		want, _ := key.Value.(int)
		var got int
		switch ev := existingKeys[key.Key].(type) {
		case int32:
			got = int(ev)
		case int64:
			got = int(ev)
		case float64:
			got = int(ev)
		default:
			return false
		}
		if got != want {
			return false
		}
	}

	wantUnique := opts.Unique != nil && *opts.Unique
	gotUnique, _ := existingIndex["unique"].(bool)
	return wantUnique == gotUnique
}

// CreateIndexes tạo các index khai báo trong model; index cùng tên nhưng khác cấu hình sẽ bị drop và tạo lại
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.WithModule("database").WithField("collection", collection.Name())

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = indexInfo
		}
	}

	for _, spec := range indexSpecs(model) {
		// Index tương đương đã có dưới tên khác (ví dụ "id_1" tạo bởi ứng dụng cũ)
		if name, ok := findEquivalentIndex(existingIndexes, spec); ok && name != spec.name {
			log.Debugf("Index %s đã tồn tại dưới tên %s, bỏ qua", spec.name, name)
			continue
		}
		if existing, ok := existingIndexes[spec.name]; ok {
			if compareIndex(existing, spec.keys, spec.options) {
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.name); err != nil {
				return fmt.Errorf("không thể xóa index %s: %w", spec.name, err)
			}
			log.Infof("Đã xóa index cũ: %s", spec.name)
		}

		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    spec.keys,
			Options: spec.options,
		}); err != nil {
			return fmt.Errorf("không thể tạo index %s: %w", spec.name, err)
		}
		log.Infof("Đã tạo index: %s", spec.name)
	}

	return nil
}

// findEquivalentIndex tìm index hiện có cùng keys và unique với spec
func findEquivalentIndex(existing map[string]bson.M, spec indexSpec) (string, bool) {
	for name, idx := range existing {
		if name == "_id_" {
			continue
		}
		if compareIndex(idx, spec.keys, spec.options) {
			return name, true
		}
	}
	return "", false
}
