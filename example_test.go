package yamlvars_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/0xalexb/yamlvars"
)

func ExampleApp_Perform() {
	dir, err := os.MkdirTemp("", "yamlvars-example")
	if err != nil {
		fmt.Println(err)

		return
	}

	defer func() { _ = os.RemoveAll(dir) }()

	err = os.WriteFile(filepath.Join(dir, "all.yml"), []byte(`
deploy:
  staging:
    DB_HOST: db.staging.internal
    REPLICAS: 2
    DB_NAME: orders
`), 0o600)
	if err != nil {
		fmt.Println(err)

		return
	}

	app := yamlvars.NewApp(
		yamlvars.WithLogOutput(io.Discard),
		yamlvars.WithEnviron([]string{"WORKSPACE=" + dir}),
		yamlvars.WithStep("${WORKSPACE}/all.yml", "deploy.staging"),
	)

	result, err := app.Perform(context.Background())
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println("success:", result.Success)

	for key, value := range result.Build.Contributed().All() {
		fmt.Printf("%s=%s\n", key, value)
	}
	// Output:
	// success: true
	// DB_HOST=db.staging.internal
	// DB_NAME=orders
}
