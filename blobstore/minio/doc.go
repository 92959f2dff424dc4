// Package minio stores correction artifacts through the MinIO client.
//
// It targets MinIO and other S3-compatible services (Ceph, Garage,
// SeaweedFS) on sites without AWS credentials:
//
//	client, err := minio.New("minio.lab:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := minioblob.NewStore(client, "hibf", "corrections/")
//
// A single-part PUT is atomic on these services, so readers never observe a
// partially written artifact. Uploads carry Content-MD5.
package minio
