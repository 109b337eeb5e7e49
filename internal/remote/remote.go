// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package remote

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"
)

const scheme = "s3://"

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
}

// Option customizes how AWS config is loaded. Default behavior (no options)
// inherits the shell environment and shared config chain (AWS_PROFILE,
// ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// IsS3 reports whether the archive argument is an s3:// URI rather than a
// local path.
func IsS3(raw string) bool {
	return strings.HasPrefix(raw, scheme)
}

// ParseURI splits s3://bucket/key into its parts.
func ParseURI(raw string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(raw, scheme)
	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, want s3://bucket/key", raw)
	}
	return bucket, key, nil
}

// Fetch downloads the archive at the s3:// URI into dir and returns the
// local path. An already-downloaded archive is reused, mirroring the
// skip-if-exists extraction policy.
func Fetch(ctx context.Context, uri, dir string, opts ...Option) (string, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return "", err
	}

	localPath := filepath.Join(dir, path.Base(key))
	if _, err := os.Stat(localPath); err == nil {
		log.Warnf("the archive %q already exists, skipping the download", localPath)
		return localPath, nil
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc := s3v2.NewFromConfig(cfg)

	log.Debugf("downloading s3://%s/%s to %q", bucket, key, localPath)

	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", localPath, err)
	}
	defer f.Close()

	n, err := io.Copy(f, result.Body)
	if err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("failed to read S3 object body: %w", err)
	}

	log.Infof("downloaded %q (%s)", localPath, humanize.Bytes(uint64(n)))

	return localPath, nil
}
