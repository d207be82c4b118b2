// doc.go

// Package cosbind builds invocations of the Cloud Object Storage
// toolkit operators (directory scan, object read, raw/parquet write)
// inside a data-flow topology. It assembles the operators' string-keyed
// parameter sets; all scanning, reading, writing, retries and
// connections happen in the external runtime that executes the graph.
//
// A typical chain mirrors scan -> read -> write:
//
//	topo := topology.New("archive-mirror")
//	names, err := cosbind.Scan(topo, cosbind.ScanOptions{
//		Bucket:    "in-bucket",
//		Endpoint:  "s3.private.us.cloud-object-storage.appdomain.cloud",
//		Directory: "/incoming",
//		Pattern:   `.*\.csv$`,
//	})
//	lines, err := cosbind.Read(names, cosbind.ReadOptions{Bucket: "in-bucket", Endpoint: ep})
//	_, err = cosbind.Write(lines, cosbind.WriteOptions{
//		Bucket:        "out-bucket",
//		Endpoint:      ep,
//		ObjectName:    "out_%OBJECTNUM.csv",
//		TimePerObject: cosbind.Seconds(60),
//	})
//
// Credentials are either an AppConfigRef naming an externally stored
// configuration (default "cos") or inline ServiceCredentials; exactly
// one form reaches the operator parameters.
package cosbind
