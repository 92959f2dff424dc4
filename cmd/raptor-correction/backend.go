package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mr-c/raptor/blobstore"
	"github.com/mr-c/raptor/blobstore/dynamo"
	"github.com/mr-c/raptor/blobstore/minio"
	"github.com/mr-c/raptor/blobstore/redis"
	"github.com/mr-c/raptor/blobstore/s3"
)

// openStore returns the artifact store named kind. The local store lives in
// dir; remote stores are configured from the environment.
func openStore(ctx context.Context, kind, dir string) (blobstore.BlobStore, error) {
	switch kind {
	case "", "local":
		return blobstore.NewLocalStore(dir), nil

	case "s3":
		bucket, err := requireEnv("RAPTOR_S3_BUCKET")
		if err != nil {
			return nil, err
		}
		var opts []s3.Option
		if prefix := os.Getenv("RAPTOR_S3_PREFIX"); prefix != "" {
			opts = append(opts, s3.WithPrefix(prefix))
		}
		if region := os.Getenv("AWS_REGION"); region != "" {
			opts = append(opts, s3.WithRegion(region))
		}
		if endpoint := os.Getenv("RAPTOR_S3_ENDPOINT"); endpoint != "" {
			opts = append(opts, s3.WithEndpoint(endpoint))
		}
		return s3.New(ctx, bucket, opts...)

	case "minio":
		endpoint, err := requireEnv("RAPTOR_MINIO_ENDPOINT")
		if err != nil {
			return nil, err
		}
		bucket, err := requireEnv("RAPTOR_MINIO_BUCKET")
		if err != nil {
			return nil, err
		}
		secure, _ := strconv.ParseBool(os.Getenv("RAPTOR_MINIO_SECURE"))
		return minio.New(minio.Config{
			Endpoint:  endpoint,
			AccessKey: os.Getenv("RAPTOR_MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("RAPTOR_MINIO_SECRET_KEY"),
			Region:    os.Getenv("AWS_REGION"),
			Secure:    secure,
		}, bucket, os.Getenv("RAPTOR_MINIO_PREFIX"))

	case "dynamo":
		table, err := requireEnv("RAPTOR_DYNAMO_TABLE")
		if err != nil {
			return nil, err
		}
		namespace := os.Getenv("RAPTOR_DYNAMO_NAMESPACE")
		if namespace == "" {
			namespace = "raptor"
		}
		return dynamo.New(ctx, table, namespace, os.Getenv("AWS_REGION"))

	case "redis":
		addr, err := requireEnv("RAPTOR_REDIS_ADDR")
		if err != nil {
			return nil, err
		}
		db := 0
		if v := os.Getenv("RAPTOR_REDIS_DB"); v != "" {
			if db, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("RAPTOR_REDIS_DB: %w", err)
			}
		}
		var opts []redis.Option
		if prefix := os.Getenv("RAPTOR_REDIS_PREFIX"); prefix != "" {
			opts = append(opts, redis.WithPrefix(prefix))
		}
		if v := os.Getenv("RAPTOR_REDIS_TTL"); v != "" {
			ttl, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("RAPTOR_REDIS_TTL: %w", err)
			}
			opts = append(opts, redis.WithTTL(ttl))
		}
		return redis.Dial(addr, os.Getenv("RAPTOR_REDIS_PASSWORD"), db, opts...), nil

	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%s must be set", name)
	}
	return v, nil
}
