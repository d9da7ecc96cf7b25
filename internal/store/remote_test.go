package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	values map[string]string
	closed bool
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	default:
		f.values[key] = fmt.Sprint(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisGetSet(t *testing.T) {
	fake := &fakeRedis{values: map[string]string{}}
	kv := newRedis(fake, "")
	ctx := context.Background()

	if _, err := kv.Get(ctx, SubjectsKey); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := kv.Set(ctx, SubjectsKey, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if fake.values["studytracker:subjects"] != "[]" {
		t.Fatalf("expected prefixed key, got %v", fake.values)
	}
	got, err := kv.Get(ctx, SubjectsKey)
	if err != nil || string(got) != "[]" {
		t.Fatalf("get: %q %v", got, err)
	}
	if err := kv.Close(); err != nil || !fake.closed {
		t.Fatalf("close did not reach client")
	}
}

func TestNewRedisRequiresAddr(t *testing.T) {
	if _, err := NewRedis(context.Background(), RedisConfig{}); err == nil {
		t.Fatalf("expected error without address")
	}
}

type fakeS3 struct {
	objects       map[string][]byte
	bucketCreated bool
	getErr        error
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.bucketCreated {
		return &s3.HeadBucketOutput{}, nil
	}
	return nil, &types.NotFound{}
}

func (f *fakeS3) CreateBucket(ctx context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.bucketCreated = true
	return &s3.CreateBucketOutput{}, nil
}

func TestS3GetSet(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	kv := newS3(fake, S3Config{Bucket: "study"})
	ctx := context.Background()

	if err := kv.ensureBucket(ctx); err != nil || !fake.bucketCreated {
		t.Fatalf("expected bucket creation, err=%v", err)
	}
	if _, err := kv.Get(ctx, SubjectsKey); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := kv.Set(ctx, SubjectsKey, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := fake.objects["studytracker/subjects.json"]; !ok {
		t.Fatalf("unexpected object keys %v", fake.objects)
	}
	got, err := kv.Get(ctx, SubjectsKey)
	if err != nil || string(got) != "[]" {
		t.Fatalf("get: %q %v", got, err)
	}
}

func TestS3GetPropagatesErrors(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, getErr: errors.New("boom")}
	kv := newS3(fake, S3Config{Bucket: "study"})
	_, err := kv.Get(context.Background(), SubjectsKey)
	if err == nil || errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
