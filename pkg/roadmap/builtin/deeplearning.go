package builtin

import "github.com/matzehuels/roadmap/pkg/roadmap"

func deepLearning() roadmap.Document {
	return roadmap.Document{
		Title:       "Deep Learning",
		Description: "From Python and math foundations through PyTorch into computer vision and NLP.",
		Nodes: []roadmap.NodeRecord{
			{ID: "start", Title: "Start", X: 0, Y: 0, Kind: "start"},
			{
				ID: "python", Title: "Python Basics", X: -160, Y: 120, Kind: "main",
				Label: "must learn", Category: "Language",
				Description: "The lingua franca of deep learning. Focus on NumPy and Pandas.",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "Python in one hour", URL: "#"},
					{Type: "article", Title: "The Python Tutorial", URL: "https://docs.python.org/3/tutorial/"},
				},
			},
			{
				ID: "math", Title: "Math Foundations", X: 160, Y: 120, Kind: "main",
				Label: "must learn", Category: "Theory",
				Description: "Linear algebra for tensor shapes, calculus for gradient descent, probability for losses.",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "Essence of Linear Algebra", URL: "https://www.3blue1brown.com/topics/linear-algebra"},
				},
			},
			{
				ID: "pytorch", Title: "PyTorch", X: 0, Y: 260, Kind: "main",
				Label: "core framework", Category: "Framework",
				Description: "Tensors, autograd and building networks with nn.Module.",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "PyTorch quick start", URL: "https://www.bilibili.com/video/BV1hE411t7RN"},
					{Type: "doc", Title: "PyTorch documentation", URL: "https://pytorch.org/docs/stable/index.html"},
				},
			},
			{
				ID: "cv-cnn", Title: "Convolutional Networks", X: -220, Y: 400, Kind: "sub-main",
				Category: "Computer Vision",
				Description: "Convolutions, pooling and the classic image classification architectures.",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "CS231n lectures", URL: "https://cs231n.stanford.edu/"},
				},
			},
			{
				ID: "cv-yolo", Title: "YOLO Object Detection", X: -220, Y: 530, Kind: "leaf",
				Label: "project", Category: "Computer Vision",
				Description: "Train and deploy a detector that finds objects in images.",
				Resources: []roadmap.ResourceRecord{
					{Type: "code", Title: "YOLOv5 source walkthrough", URL: "https://github.com/ultralytics/yolov5"},
					{Type: "article", Title: "Training on a custom dataset", URL: "#"},
				},
			},
			{
				ID: "nlp-transformer", Title: "Transformers", X: 220, Y: 400, Kind: "sub-main",
				Category: "NLP",
				Description: "Attention, positional encodings and the encoder-decoder stack.",
				Resources: []roadmap.ResourceRecord{
					{Type: "article", Title: "The Illustrated Transformer", URL: "https://jalammar.github.io/illustrated-transformer/"},
				},
			},
			{
				ID: "nlp-bert", Title: "BERT Fine-tuning", X: 220, Y: 530, Kind: "leaf",
				Label: "project", Category: "NLP",
				Description: "Fine-tune a pretrained encoder for text classification.",
				Resources: []roadmap.ResourceRecord{
					{Type: "doc", Title: "Hugging Face course", URL: "https://huggingface.co/learn"},
				},
			},
			{
				ID: "rl-basics", Title: "Reinforcement Learning", X: 480, Y: 400, Kind: "optional",
				Label: "optional", Category: "Elective",
				Description: "Policies, value functions and the bandit problem.",
				Resources: []roadmap.ResourceRecord{
					{Type: "article", Title: "Spinning Up in Deep RL", URL: "https://spinningup.openai.com/"},
				},
			},
			{
				ID: "capstone", Title: "Capstone Project", X: 0, Y: 670, Kind: "branch",
				Label: "project", Category: "Lab",
				Description: "Combine vision and language models into one end-to-end application.",
			},
			{ID: "end", Title: "Finish", X: 0, Y: 800, Kind: "end"},
		},
		Edges: []roadmap.EdgeRecord{
			{From: "start", To: "python"},
			{From: "start", To: "math"},
			{From: "python", To: "pytorch", Style: "merge"},
			{From: "math", To: "pytorch", Style: "merge"},
			{From: "pytorch", To: "cv-cnn"},
			{From: "pytorch", To: "nlp-transformer"},
			{From: "pytorch", To: "rl-basics", Dashed: true},
			{From: "rl-basics", To: "capstone", Style: "merge", Dashed: true},
			{From: "cv-cnn", To: "cv-yolo", Style: "straight"},
			{From: "nlp-transformer", To: "nlp-bert", Style: "straight"},
			{From: "cv-yolo", To: "capstone", Style: "merge"},
			{From: "nlp-bert", To: "capstone", Style: "merge"},
			{From: "capstone", To: "end", Style: "straight"},
		},
	}
}
