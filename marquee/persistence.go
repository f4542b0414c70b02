package marquee

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LocalData remembers how often the splash has been watched, so returning
// visitors get a skip hint instead of sitting through the full half minute
// again.
type LocalData struct {
	Visits    int
	Completed int
	LastVisit time.Time
}

func ReadLocalData(path string) LocalData {
	persistent := LocalData{}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		data = []byte{}
	}

	err = yaml.Unmarshal(data, &persistent)
	if err != nil {
		fmt.Printf("[Boot] error loading persistent data\n")
	}

	return persistent
}

func (data *LocalData) WriteToFile(path string) {
	yml, err := yaml.Marshal(&data)
	if err != nil {
		log.Fatalf("[persistence] error: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("[persistence] error writing data: %v", err)
	}
	defer f.Close()
	f.Write(yml)
}

// ShowSkipHint is true once a previous visit has seen the splash through.
func (data *LocalData) ShowSkipHint() bool {
	return data.Completed > 0
}
